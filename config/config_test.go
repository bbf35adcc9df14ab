package config_test

import (
	"testing"

	"go-airline-tickets/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success - defaults", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("DATA_FILE", "")

		cfg := config.LoadConfig()

		assert.Equal(t, config.StorageFile, cfg.Storage.Backend)
		assert.Equal(t, "tickets.json", cfg.Storage.DataFile)
		assert.Equal(t, "tickets", cfg.Redis.Prefix)
	})

	t.Run("Success - env overrides", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", config.StorageRedis)
		t.Setenv("DATA_FILE", "/var/lib/tickets/data.json")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("DYNAMODB_TABLE", "flight_tickets")

		cfg := config.LoadConfig()

		assert.Equal(t, config.StorageRedis, cfg.Storage.Backend)
		assert.Equal(t, "/var/lib/tickets/data.json", cfg.Storage.DataFile)
		assert.Equal(t, 3, cfg.Redis.DB)
		assert.Equal(t, "flight_tickets", cfg.DynamoDB.Table)
	})

	t.Run("Failed - non numeric REDIS_DB panics", func(t *testing.T) {
		t.Setenv("REDIS_DB", "one")

		assert.Panics(t, func() { config.LoadConfig() })
	})
}
