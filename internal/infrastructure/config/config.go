package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth    AuthConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	HTTP    HTTPConfig
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET, required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,  default=24h"`
	LoginRateLimit float64       `env:"LOGIN_RATE_LIMIT, default=5"`
}

type SessionConfig struct {
	// ResolveTimeout bounds the profile lookup; past it the session is
	// reported as still loading.
	ResolveTimeout time.Duration `env:"SESSION_RESOLVE_TIMEOUT, default=2s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=0"`
}

type HTTPConfig struct {
	LoginPath     string `env:"LOGIN_PATH,     default=/login"`
	VisitWorkers  int    `env:"VISIT_WORKERS,  default=4"`
	EnableSwagger bool   `env:"ENABLE_SWAGGER, default=true"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is loaded first when present; it
// never overrides variables that are already set.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}
	if cfg.Auth.LoginRateLimit <= 0 {
		return nil, fmt.Errorf("config: LOGIN_RATE_LIMIT must be positive")
	}
	return &cfg, nil
}
