package main

import (
	"context"
	"fmt"

	"isp-dashboard/config"
	configMinio "isp-dashboard/config/minio"
	configRedis "isp-dashboard/config/redis"
	"isp-dashboard/internal/httpserver"
	"isp-dashboard/pkg/cache"
	"isp-dashboard/pkg/discord"
	"isp-dashboard/pkg/encrypter"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/log"
	pkgRedis "isp-dashboard/pkg/redis"
	"isp-dashboard/pkg/scope"

	"github.com/prometheus/client_golang/prometheus"
)

// @title       ISP Dashboard API
// @description Backend for the ISP operator dashboard
// @version     1.0
// @host        localhost:8080
// @schemes     http ws
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting ISP dashboard API...")

	registry := prometheus.NewRegistry()

	// Upstream GraphQL API
	gqlClient, err := graphql.New(logger, graphql.Config{
		Endpoint: cfg.GraphQL.Endpoint,
		Timeout:  cfg.GraphQL.Timeout,
		Debug:    cfg.GraphQL.Debug,
	}, graphql.NewMetrics(registry))
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize GraphQL client: %v", err)
		return
	}
	logger.Infof(ctx, "GraphQL client targets %s", cfg.GraphQL.Endpoint)

	// Redis - response cache and change events
	redisClient, err := configRedis.Connect(ctx, logger, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()

	// Response cache, encrypted at rest
	responseCache := cache.NewNop()
	if cfg.Cache.Enabled {
		enc, err := encrypter.NewDerived(cfg.Encrypter.Key, "isp-dashboard/cache")
		if err != nil {
			logger.Errorf(ctx, "Failed to derive cache key: %v", err)
			return
		}
		responseCache = cache.New(logger, redisClient, enc, cache.Config{
			TTL:  cfg.Cache.TTL,
			Miss: pkgRedis.ErrNil,
		})
		logger.Infof(ctx, "Response cache enabled (ttl %s)", cfg.Cache.TTL)
	}

	// MinIO - ticket attachments
	minioClient, err := configMinio.Connect(ctx, logger, cfg.MinIO, 3)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	logger.Infof(ctx, "MinIO connected to %s", cfg.MinIO.Endpoint)

	// Discord webhooks (optional)
	discordCfg := discord.Config{Timeout: cfg.Discord.Timeout, RetryCount: cfg.Discord.RetryCount}
	bugReports := newDiscord(ctx, logger, "bug report", cfg.Discord.ReportBugURL, discordCfg)
	alerts := newDiscord(ctx, logger, "alerts", cfg.Discord.AlertsURL, discordCfg)
	defer closeDiscord(bugReports, alerts)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		GraphQL: gqlClient,
		Cache:   responseCache,

		WSConfig: cfg.WebSocket,

		JWTManager:     scope.New(cfg.JWT.SecretKey),
		AllowedOrigins: cfg.CORS.AllowedOrigins,

		Redis:     redisClient,
		Storage:   minioClient,
		URLExpiry: cfg.MinIO.URLExpiry,
		Discord:   bugReports,
		Alerts:    alerts,
		Registry:  registry,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
	logger.Info(ctx, "ISP dashboard API stopped gracefully")
}

func newDiscord(ctx context.Context, logger log.Logger, name, webhookURL string, cfg discord.Config) discord.IDiscord {
	if webhookURL == "" {
		logger.Infof(ctx, "Discord %s webhook not configured", name)
		return nil
	}
	client, err := discord.New(logger, webhookURL, cfg)
	if err != nil {
		logger.Warnf(ctx, "Failed to initialize Discord %s webhook: %v", name, err)
		return nil
	}
	return client
}

func closeDiscord(clients ...discord.IDiscord) {
	for _, c := range clients {
		if c != nil {
			_ = c.Close()
		}
	}
}
