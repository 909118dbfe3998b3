package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "SQLITE_PATH", "CORS_ORIGINS", "PRODUCTIVITY_SNAPSHOT_AT", "SHUTDOWN_TIMEOUT", "TIMEZONE"} {
		t.Setenv(key, "")
	}
	t.Setenv("API_PASSWORD", "")

	cfg := LoadConfig()

	// Empty values are explicit settings, not missing ones.
	assert.Equal(t, "", cfg.AppPort)
	assert.Nil(t, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIPassword)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("API_PASSWORD", "s3cret")
	t.Setenv("DB_DRIVER", DriverMySQL)
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("TIMEZONE", "Europe/Paris")

	cfg := LoadConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverMySQL, cfg.DbDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.TrustedProxies)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "Europe/Paris", cfg.Location().String())
}

func TestConfig_LocationFallsBackToUTC(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getDuration("SHUTDOWN_TIMEOUT", time.Minute))
}
