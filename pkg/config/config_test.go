package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, DriverFile, cfg.Store.Driver)
	assert.Equal(t, 1500*time.Millisecond, cfg.Payment.Delay)
	assert.Equal(t, 30*time.Second, cfg.Payment.Timeout)
	assert.False(t, cfg.DecrementStock)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", " Memory ")
	t.Setenv("PAYMENT_DELAY", "10ms")
	t.Setenv("DECREMENT_STOCK", "true")
	t.Setenv("POSTGRES_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 10*time.Millisecond, cfg.Payment.Delay)
	assert.True(t, cfg.DecrementStock)
	assert.Equal(t, "db", cfg.Postgres.Host)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsTimeoutBelowDelay(t *testing.T) {
	t.Setenv("PAYMENT_DELAY", "2s")
	t.Setenv("PAYMENT_TIMEOUT", "1s")

	_, err := Load()
	assert.ErrorContains(t, err, "PAYMENT_TIMEOUT")
}
