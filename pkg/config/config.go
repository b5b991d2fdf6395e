// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/tair/inventory-information/pkg/database"
)

// Config is the complete service configuration.
type Config struct {
	ServiceName    string        `env:"OTEL_SERVICE_NAME" envDefault:"inventory-service"`
	Environment    string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort       string        `env:"HTTP_PORT" envDefault:"8082"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	JaegerEndpoint string        `env:"JAEGER_ENDPOINT" envDefault:"http://localhost:14268/api/traces"`

	// JWTSecret enables bearer authentication when set.
	JWTSecret string `env:"JWT_SECRET"`
	// ProductServiceURL enables product validation of new levels when set.
	ProductServiceURL string `env:"PRODUCT_SERVICE_URL"`
	// HistoryLimit bounds the change history kept per level.
	HistoryLimit int `env:"INVENTORY_HISTORY_LIMIT" envDefault:"1000"`

	DB        database.Config `envPrefix:"DB_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Kafka     KafkaConfig     `envPrefix:"KAFKA_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// RateLimitConfig is enforced only when Redis is reachable. Zero requests
// disables it.
type RateLimitConfig struct {
	Requests int           `env:"REQUESTS" envDefault:"100"`
	Window   time.Duration `env:"WINDOW" envDefault:"1m"`
	// TrustedProxies lists the addresses or CIDRs whose X-Forwarded-For
	// header is believed. Empty keys clients by peer address only.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// KafkaConfig is disabled when no brokers are configured.
type KafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:","`
	Topic         string   `env:"TOPIC" envDefault:"inventory-events"`
	ItemSyncTopic string   `env:"ITEM_SYNC_TOPIC" envDefault:"inventory-item-sync"`
	GroupID       string   `env:"GROUP_ID" envDefault:"inventory-service"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("INVENTORY_HISTORY_LIMIT must not be negative, got %d", cfg.HistoryLimit)
	}
	if cfg.RateLimit.Requests < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative, got %d", cfg.RateLimit.Requests)
	}
	return cfg, nil
}
