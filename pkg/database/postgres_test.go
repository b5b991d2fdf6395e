package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5433",
		User:     "inv",
		Password: "secret",
		DBName:   "inventorydb",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=inv password=secret dbname=inventorydb sslmode=require", cfg.DSN())
}
