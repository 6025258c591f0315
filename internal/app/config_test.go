package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("GARMIN_EMAIL", "a@b.com")
	t.Setenv("GARMIN_PASSWORD", "secret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("PROFILE", "prod")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "data", cfg.DataDir)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "parquet", cfg.SaveFormat)
		assert.True(t, cfg.Archive)
		assert.Equal(t, 60, cfg.HTTPTimeoutSec)
		assert.False(t, cfg.Historical())
		assert.Equal(t, filepath.Join("data", "health_data.json"), cfg.OutputPath())
		assert.Equal(t, filepath.Join("data", "garmin"), cfg.ArchiveDir())
	})

	t.Run("MissingEmail", func(t *testing.T) {
		t.Setenv("GARMIN_EMAIL", "")
		t.Setenv("GARMIN_PASSWORD", "secret")
		_, err := LoadConfig()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "GARMIN_EMAIL")
	})

	t.Run("MissingPassword", func(t *testing.T) {
		t.Setenv("GARMIN_EMAIL", "a@b.com")
		t.Setenv("GARMIN_PASSWORD", "")
		_, err := LoadConfig()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "GARMIN_PASSWORD")
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		t.Setenv("GARMIN_EMAIL", "not-an-email")
		t.Setenv("GARMIN_PASSWORD", "secret")
		_, err := LoadConfig()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "valid email")
	})

	t.Run("HistoricalRange", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("START_DATE", "2024-01-01")
		t.Setenv("END_DATE", "2024-01-31")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.Historical())
	})

	t.Run("HalfRangeRejected", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("START_DATE", "2024-01-01")
		_, err := LoadConfig()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("InvertedRangeRejected", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("START_DATE", "2024-02-01")
		t.Setenv("END_DATE", "2024-01-01")
		_, err := LoadConfig()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "after")
	})

	t.Run("BadDateFormatRejected", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("START_DATE", "01/15/2024")
		t.Setenv("END_DATE", "2024-01-31")
		_, err := LoadConfig()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("SaveFormatFromProfile", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("PROFILE", "dev")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "csv", cfg.SaveFormat)

		t.Setenv("SAVE_FORMAT", "json")
		cfg, err = LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.SaveFormat)
	})

	t.Run("ArchiveDisabled", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("ARCHIVE", "false")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.False(t, cfg.Archive)
	})
}
