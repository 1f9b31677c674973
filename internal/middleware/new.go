package middleware

import (
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	guard      *form.Guard
	metrics    *Metrics
}

// New creates the request middleware. A nil metrics disables HTTP metrics.
func New(l log.Logger, jwtManager scope.Manager, guard *form.Guard, metrics *Metrics) Middleware {
	if guard == nil {
		guard = form.NewGuard()
	}
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		guard:      guard,
		metrics:    metrics,
	}
}
