package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "APP_DEBUG", "APP_BASIC_AUTH", "DB_DRIVER", "DB_NAME", "DB_URI", "SETTINGS_BACKEND", "EXTENSION_ENABLED", "APP_BASE_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.False(t, cfg.App.Debug)
	assert.Empty(t, cfg.App.BasicAuth)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, filepath.Join("storages", "chatbox.db"), cfg.Database.Name)
	assert.Equal(t, "database", cfg.Database.SettingsBackend)
	assert.False(t, cfg.Extension.Enabled)
	assert.Equal(t, "CF-IPCountry", cfg.App.CountryHeader)
	assert.Equal(t, "@daily", cfg.Report.PurgeSpec)
	assert.Same(t, cfg, Global)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DEBUG", "on")
	t.Setenv("APP_BASIC_AUTH", "admin:secret,ops:pw")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("SETTINGS_BACKEND", "Valkey")
	t.Setenv("EXTENSION_ENABLED", "yes")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, []string{"admin:secret", "ops:pw"}, cfg.App.BasicAuth)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "valkey", cfg.Database.SettingsBackend)
	assert.True(t, cfg.Extension.Enabled)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("CHATBOX_TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("CHATBOX_TEST_INT", 7))
}
