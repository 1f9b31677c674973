package graphql

import (
	"context"
	"time"

	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/scope"

	mbgraphql "github.com/machinebox/graphql"
)

type implClient struct {
	l       log.Logger
	client  *mbgraphql.Client
	timeout time.Duration
	metrics *Metrics
}

// Run sends req with the caller's bearer token and decodes the data object into resp.
// Server errors are returned as *Error.
func (c *implClient) Run(ctx context.Context, req *Request, resp any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	mreq := mbgraphql.NewRequest(req.Query)
	for k, v := range req.Variables {
		mreq.Var(k, v)
	}
	if token, ok := scope.GetTokenFromContext(ctx); ok && token != "" {
		mreq.Header.Set(headerAuthorization, bearerPrefix+token)
	}

	start := time.Now()
	err := c.client.Run(ctx, mreq, resp)
	c.metrics.observe(req.Operation, err, time.Since(start))
	if err != nil {
		c.l.Warnf(ctx, "pkg.graphql.Run.%s: %v", req.Operation, err)
		return newError(req.Operation, err)
	}

	return nil
}
