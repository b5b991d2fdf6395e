package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory-service", cfg.ServiceName)
	assert.Equal(t, "8082", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1000, cfg.HistoryLimit)
	assert.Equal(t, "inventorydb", cfg.DB.DBName)
	assert.Equal(t, "inventory-events", cfg.Kafka.Topic)
	assert.Equal(t, "inventory-item-sync", cfg.Kafka.ItemSyncTopic)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "stock")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("INVENTORY_HISTORY_LIMIT", "50")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "stock", cfg.DB.DBName)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_RejectsNegativeHistoryLimit(t *testing.T) {
	t.Setenv("INVENTORY_HISTORY_LIMIT", "-1")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_RateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.RateLimit.TrustedProxies)

	t.Setenv("RATE_LIMIT_REQUESTS", "-5")
	_, err = Load()
	assert.Error(t, err)
}
