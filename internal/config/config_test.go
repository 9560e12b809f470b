package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadClean(t)
	require.NoError(t, err)

	assert.Equal(t, 9002, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "http://localhost:9002/api/destination", cfg.Destination.URL)
	assert.Equal(t, 30*time.Second, cfg.Vitals.InactivityTimeout)
	assert.Equal(t, 50, cfg.Vitals.HistoryLimit)
	assert.Empty(t, cfg.Redis.Host)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PULSEGUARD_SERVER__PORT", "8080")
	t.Setenv("PULSEGUARD_VITALS__INACTIVITY_TIMEOUT", "10s")
	t.Setenv("PULSEGUARD_DESTINATION__URL", "http://collaborator:9100/api/destination")

	cfg, err := loadClean(t)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Vitals.InactivityTimeout)
	assert.Equal(t, "http://collaborator:9100/api/destination", cfg.Destination.URL)
}

func TestLoad_PostgresDriverRequiresHost(t *testing.T) {
	t.Setenv("PULSEGUARD_DATABASE__DRIVER", "postgres")

	_, err := loadClean(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres host is required")
}

func TestLoad_UnknownDriverRejected(t *testing.T) {
	t.Setenv("PULSEGUARD_DATABASE__DRIVER", "mongo")

	_, err := loadClean(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database driver")
}
