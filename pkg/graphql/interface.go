package graphql

import (
	"context"
	"net/http"
	"time"

	"isp-dashboard/pkg/log"

	mbgraphql "github.com/machinebox/graphql"
)

// Client runs GraphQL documents against the upstream API.
// Implementations are safe for concurrent use.
type Client interface {
	Run(ctx context.Context, req *Request, resp any) error
}

// Config configures the default Client.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	Debug    bool
}

// New creates a Client over HTTP. metrics may be nil.
func New(l log.Logger, cfg Config, metrics *Metrics) (Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := mbgraphql.NewClient(cfg.Endpoint, mbgraphql.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	if cfg.Debug {
		client.Log = func(s string) {
			l.Debugf(context.Background(), "pkg.graphql: %s", s)
		}
	}

	return &implClient{
		l:       l,
		client:  client,
		timeout: cfg.Timeout,
		metrics: metrics,
	}, nil
}
