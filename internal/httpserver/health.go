package httpserver

import (
	"context"
	"net/http"
	"time"

	"isp-dashboard/internal/realtime"
	"isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName    = "isp-dashboard"
	serviceVersion = "1.0.0"

	probeTimeout = 2 * time.Second
)

const (
	errCodeUnhealthy = 503
	errCodeNotReady  = 504
)

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

type probe struct {
	name  string
	check func(ctx context.Context) error
}

// runProbes runs every probe in parallel and reports each one as "ok" or its
// error. ok is false when any probe failed.
func (srv *HTTPServer) runProbes(ctx context.Context, probes []probe) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]error, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			results[i] = p.check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	status := make(map[string]string, len(probes))
	ok := true
	for i, p := range probes {
		if err := results[i]; err != nil {
			srv.logger.Warnf(ctx, "internal.httpserver.runProbes.%s: %v", p.name, err)
			status[p.name] = err.Error()
			ok = false
			continue
		}
		status[p.name] = "ok"
	}
	return status, ok
}

func (srv *HTTPServer) readinessProbes() []probe {
	probes := []probe{{name: "redis", check: srv.redis.Ping}}
	if hc, ok := srv.storage.(healthChecker); ok {
		probes = append(probes, probe{name: "storage", check: hc.HealthCheck})
	}
	return probes
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check that Redis is reachable and report live connection counts
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Failure 503 {object} response.Resp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	deps, ok := srv.runProbes(ctx, []probe{{name: "redis", check: srv.redis.Ping}})
	if !ok {
		response.HttpError(c, errors.NewHTTPError(errCodeUnhealthy, "Redis connection failed", http.StatusServiceUnavailable))
		return
	}

	var stats realtime.HubStats
	if srv.realtimeUC != nil {
		stats, _ = srv.realtimeUC.GetStats(ctx)
	}

	response.OK(c, gin.H{
		"status":       "healthy",
		"service":      serviceName,
		"version":      serviceVersion,
		"dependencies": deps,
		"realtime":     stats,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check that Redis and attachment storage are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	deps, ok := srv.runProbes(c.Request.Context(), srv.readinessProbes())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: errCodeNotReady,
			Message:   "Service not ready",
			Data:      gin.H{"dependencies": deps},
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"service":      serviceName,
		"version":      serviceVersion,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check that the process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
