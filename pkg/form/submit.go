package form

import (
	"sync"
	"sync/atomic"
)

// Submitter tracks whether a single form has a mutation in flight.
// It is advisory: callers check Begin and skip the mutation when it is false.
type Submitter struct {
	inFlight atomic.Bool
}

// Begin marks a submission as started. It returns false when one is already running.
func (s *Submitter) Begin() bool {
	return s.inFlight.CompareAndSwap(false, true)
}

// End marks the running submission as finished.
func (s *Submitter) End() {
	s.inFlight.Store(false)
}

// InFlight reports whether a submission is running.
func (s *Submitter) InFlight() bool {
	return s.inFlight.Load()
}

// Guard holds one Submitter per key, e.g. per user and form.
type Guard struct {
	mu         sync.Mutex
	submitters map[string]*Submitter
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{submitters: make(map[string]*Submitter)}
}

// Begin starts a submission for key.
func (g *Guard) Begin(key string) bool {
	g.mu.Lock()
	s, ok := g.submitters[key]
	if !ok {
		s = &Submitter{}
		g.submitters[key] = s
	}
	g.mu.Unlock()
	return s.Begin()
}

// End finishes the submission for key and forgets it.
func (g *Guard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.submitters[key]; ok {
		s.End()
		delete(g.submitters, key)
	}
}
