package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream GraphQL API
	GraphQL GraphQLConfig

	// Storage & Cache Configuration
	Redis RedisConfig
	MinIO MinIOConfig
	Cache CacheConfig

	// WebSocket Configuration
	WebSocket WebSocketConfig

	// Authentication & Security Configuration
	JWT       JWTConfig
	Encrypter EncrypterConfig
	CORS      CORSConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"APP_PORT" envDefault:"8080"`
	Mode string `env:"API_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// GraphQLConfig is the configuration for the upstream GraphQL API
type GraphQLConfig struct {
	Endpoint string        `env:"GRAPHQL_ENDPOINT" envDefault:"http://localhost:4000/graphql"`
	Timeout  time.Duration `env:"GRAPHQL_TIMEOUT" envDefault:"15s"`
	Debug    bool          `env:"GRAPHQL_DEBUG" envDefault:"false"`
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// MinIOConfig is the configuration for ticket attachment storage
type MinIOConfig struct {
	Endpoint  string        `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string        `env:"MINIO_ACCESS_KEY"`
	SecretKey string        `env:"MINIO_SECRET_KEY"`
	UseSSL    bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	Region    string        `env:"MINIO_REGION" envDefault:"us-east-1"`
	Bucket    string        `env:"MINIO_BUCKET" envDefault:"isp-attachments"`
	URLExpiry time.Duration `env:"MINIO_URL_EXPIRY" envDefault:"15m"`
}

// CacheConfig is the configuration for the response cache
type CacheConfig struct {
	Enabled bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"2m"`
}

// WebSocketConfig is the configuration for WebSocket connections
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"512"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
	MaxConnsPerUser int           `env:"WS_MAX_CONNS_PER_USER" envDefault:"5"`
	ConnectRate     int           `env:"WS_CONNECT_RATE" envDefault:"20"`
	ConnectWindow   time.Duration `env:"WS_CONNECT_WINDOW" envDefault:"1m"`
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY,notEmpty"`
}

// EncrypterConfig is the configuration for encrypting cached values
type EncrypterConfig struct {
	Key string `env:"ENCRYPT_KEY,notEmpty"`
}

// CORSConfig lists the dashboard origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	ReportBugURL string        `env:"DISCORD_REPORT_BUG_URL"`
	AlertsURL    string        `env:"DISCORD_ALERTS_URL"`
	Timeout      time.Duration `env:"DISCORD_TIMEOUT" envDefault:"10s"`
	RetryCount   int           `env:"DISCORD_RETRY_COUNT" envDefault:"2"`
}

// IsDevelopment reports whether the service runs in a development environment.
func (c EnvironmentConfig) IsDevelopment() bool {
	return c.Name == "development" || c.Name == "dev" || c.Name == "local"
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}
