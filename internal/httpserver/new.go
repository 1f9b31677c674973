package httpserver

import (
	"errors"
	"time"

	"isp-dashboard/config"
	"isp-dashboard/internal/realtime"
	realtimeRedis "isp-dashboard/internal/realtime/delivery/redis"
	"isp-dashboard/internal/ticket"
	"isp-dashboard/pkg/cache"
	"isp-dashboard/pkg/discord"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/log"
	pkgRedis "isp-dashboard/pkg/redis"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	environment string

	// Upstream API and cache
	graphql graphql.Client
	cache   cache.Cache

	// Realtime
	wsConfig config.WebSocketConfig

	// Auth & security
	jwtMgr         scope.Manager
	allowedOrigins []string

	// External services
	redis     pkgRedis.IRedis
	storage   ticket.Storage
	urlExpiry time.Duration
	discord   discord.IDiscord
	alerts    discord.IDiscord
	registry  *prometheus.Registry

	// Set by mapHandlers
	realtimeUC realtime.UseCase
	subscriber realtimeRedis.Subscriber
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Upstream API and cache
	GraphQL graphql.Client
	Cache   cache.Cache

	// WebSocket configuration
	WSConfig config.WebSocketConfig

	// Auth & security
	JWTManager     scope.Manager
	AllowedOrigins []string

	// External services
	Redis     pkgRedis.IRedis
	Storage   ticket.Storage
	URLExpiry time.Duration
	// Discord receives bug reports for unexpected errors.
	Discord discord.IDiscord
	// Alerts receives urgent ticket and subscription notices.
	Alerts   discord.IDiscord
	Registry *prometheus.Registry
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	srv := &HTTPServer{
		gin:         engine,
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,

		graphql: cfg.GraphQL,
		cache:   cfg.Cache,

		wsConfig: cfg.WSConfig,

		jwtMgr:         cfg.JWTManager,
		allowedOrigins: cfg.AllowedOrigins,

		redis:     cfg.Redis,
		storage:   cfg.Storage,
		urlExpiry: cfg.URLExpiry,
		discord:   cfg.Discord,
		alerts:    cfg.Alerts,
		registry:  cfg.Registry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.cache == nil {
		srv.cache = cache.NewNop()
	}
	if srv.registry == nil {
		srv.registry = prometheus.NewRegistry()
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if s.graphql == nil {
		return errors.New("GraphQL client is required")
	}
	if s.redis == nil {
		return errors.New("Redis client is required")
	}
	if s.storage == nil {
		return errors.New("attachment storage is required")
	}

	return nil
}
