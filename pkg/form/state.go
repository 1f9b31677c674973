package form

import "isp-dashboard/pkg/errors"

// Status is where an edit form is in loading its source record.
type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// State is an edit form: the record it was loaded from (S) and the values shown (V).
type State[S, V any] struct {
	Status Status
	Source S
	Values V
	Reason string
}

// EventKind is what happened to the form's data source.
type EventKind string

const (
	EventFetched EventKind = "fetched"
	EventFailed  EventKind = "failed"
	EventReload  EventKind = "reload"
)

// Event is input to Reduce.
type Event[S any] struct {
	Kind EventKind
	Data S
	Err  error
}

// Loading is the initial State.
func Loading[S, V any]() State[S, V] {
	return State[S, V]{Status: StatusLoading}
}

// Reduce returns the next State. derive runs only on the Loading to Loaded
// transition; data arriving for an already loaded form leaves the values alone.
func Reduce[S, V any](st State[S, V], ev Event[S], derive func(S) V) State[S, V] {
	switch ev.Kind {
	case EventReload:
		return Loading[S, V]()
	case EventFailed:
		if st.Status != StatusLoading {
			return st
		}
		reason := ""
		if ev.Err != nil {
			reason = ev.Err.Error()
		}
		return State[S, V]{Status: StatusError, Reason: reason}
	case EventFetched:
		switch st.Status {
		case StatusLoading:
			return State[S, V]{Status: StatusLoaded, Source: ev.Data, Values: derive(ev.Data)}
		case StatusLoaded:
			st.Source = ev.Data
			return st
		}
	}
	return st
}

// View is a form as returned to the browser.
type View[V any] struct {
	Status         Status            `json:"status"`
	Values         V                 `json:"values"`
	Errors         map[string]string `json:"errors,omitempty"`
	Reason         string            `json:"reason,omitempty"`
	SubmitDisabled bool              `json:"submit_disabled"`
}

// NewView renders st. Submission is disabled until the form is loaded, while
// the schema is unsatisfied and while a submission is in flight.
func NewView[S, V any](st State[S, V], errs *errors.ValidationErrorCollector, submitting bool) View[V] {
	v := View[V]{
		Status: st.Status,
		Values: st.Values,
		Reason: st.Reason,
	}
	if errs != nil && errs.HasError() {
		v.Errors = errs.Fields()
	}
	v.SubmitDisabled = submitting || st.Status != StatusLoaded || len(v.Errors) > 0
	return v
}

// NewPristineView renders a form nobody has typed into yet. Field errors are
// held back but still keep submission disabled.
func NewPristineView[S, V any](st State[S, V], errs *errors.ValidationErrorCollector) View[V] {
	v := NewView(st, errs, false)
	v.Errors = nil
	return v
}
