package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"isp-dashboard/internal/realtime"
	"isp-dashboard/pkg/log"
)

type orgMessage struct {
	orgID string
	data  []byte
}

// Hub tracks connections by organization and user.
type Hub struct {
	// org -> user -> connections (one per tab)
	orgs map[string]map[string][]*Connection
	mu   sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan orgMessage

	total      atomic.Int64
	sent       atomic.Int64
	failed     atomic.Int64
	maxConns   int
	maxPerUser int
	logger     log.Logger
	metrics    *Metrics
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
}

func newHub(logger log.Logger, cfg realtime.Config, metrics *Metrics) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		orgs:       make(map[string]map[string][]*Connection),
		register:   make(chan *Connection, 100),
		unregister: make(chan *Connection, 100),
		broadcast:  make(chan orgMessage, 1000),
		maxConns:   cfg.MaxConnections,
		maxPerUser: cfg.MaxConnsPerUser,
		logger:     logger,
		metrics:    metrics,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

func (h *Hub) run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return
		case conn := <-h.register:
			h.add(conn)
		case conn := <-h.unregister:
			h.remove(conn)
		case msg := <-h.broadcast:
			h.sendToOrganization(msg)
		}
	}
}

// admit checks the limits without reserving a slot.
func (h *Hub) admit(orgID, userID string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.admitLocked(orgID, userID)
}

func (h *Hub) admitLocked(orgID, userID string) error {
	if h.maxConns > 0 && int(h.total.Load()) >= h.maxConns {
		return realtime.ErrMaxConnectionsReached
	}
	if h.maxPerUser > 0 && len(h.orgs[orgID][userID]) >= h.maxPerUser {
		return realtime.ErrTooManyUserConns
	}
	return nil
}

func (h *Hub) add(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.admitLocked(conn.orgID, conn.userID); err != nil {
		h.logger.Warnf(context.Background(), "internal.realtime.usecase.Hub.add: user=%s org=%s: %v", conn.userID, conn.orgID, err)
		go conn.Close()
		return
	}

	users, ok := h.orgs[conn.orgID]
	if !ok {
		users = make(map[string][]*Connection)
		h.orgs[conn.orgID] = users
	}
	users[conn.userID] = append(users[conn.userID], conn)
	h.total.Add(1)
	h.metrics.connected(1)
}

func (h *Hub) remove(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	users, ok := h.orgs[conn.orgID]
	if !ok {
		return
	}
	conns := users[conn.userID]
	for i, c := range conns {
		if c != conn {
			continue
		}
		users[conn.userID] = append(conns[:i], conns[i+1:]...)
		if len(users[conn.userID]) == 0 {
			delete(users, conn.userID)
		}
		if len(users) == 0 {
			delete(h.orgs, conn.orgID)
		}
		close(conn.send)
		h.total.Add(-1)
		h.metrics.connected(-1)
		return
	}
}

func (h *Hub) sendToOrganization(msg orgMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for userID, conns := range h.orgs[msg.orgID] {
		for _, conn := range conns {
			select {
			case conn.send <- msg.data:
				h.sent.Add(1)
				h.metrics.delivered(true)
			default:
				h.logger.Warnf(context.Background(), "internal.realtime.usecase.Hub.sendToOrganization: buffer full user=%s org=%s", userID, msg.orgID)
				h.failed.Add(1)
				h.metrics.delivered(false)
			}
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, users := range h.orgs {
		for _, conns := range users {
			for _, conn := range conns {
				conn.Close()
			}
		}
	}
	h.orgs = make(map[string]map[string][]*Connection)
	h.total.Store(0)
}

func (h *Hub) stats() realtime.HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return realtime.HubStats{
		ActiveConnections:   int(h.total.Load()),
		ActiveOrganizations: len(h.orgs),
		TotalMessagesSent:   h.sent.Load(),
		TotalMessagesFailed: h.failed.Load(),
	}
}

func (h *Hub) shutdown(ctx context.Context) error {
	h.cancel()
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
