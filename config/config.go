package config

import (
	"fmt"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	// MongoDB
	MongoURI            string        `conf:"required,env:MONGO_URI,noprint"`
	MongoDatabase       string        `conf:"default:Vodex_ai,env:MONGO_DATABASE"`
	MongoConnectTimeout time.Duration `conf:"default:10s,env:MONGO_CONNECT_TIMEOUT"`

	// Redis read-through cache; disabled when empty.
	RedisURL string        `conf:"env:REDIS_URL,noprint"`
	CacheTTL time.Duration `conf:"default:5m,env:CACHE_TTL"`

	// HTTP
	HTTPAddr           string        `conf:"default::8000,env:HTTP_ADDR"`
	CORSAllowedOrigins string        `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    time.Duration `conf:"default:15s,env:SHUTDOWN_TIMEOUT"`

	LogLevel string `conf:"default:info,enum:debug|info|warn|error,env:LOG_LEVEL"`
}

// Load reads configuration from the environment, after loading .env if present.
// The returned help text is non-empty when --help was requested; err is then
// conf.ErrHelpWanted.
func Load() (*Config, string, error) {
	var cfg Config
	_ = godotenv.Load()
	help, err := conf.Parse("", &cfg)
	if err != nil {
		return nil, help, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, help, nil
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
