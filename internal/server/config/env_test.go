package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvPixabayAPIKey, "pix-key")
	t.Setenv(EnvAccuWeatherAPIKey, "accu-key")
	t.Setenv(EnvSecretKey, "jwt-secret")
	t.Setenv(EnvWeatherCacheTTL, "5m")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, "")

	assert.Equal(t, "pix-key", cfg.PixabayAPIKey)
	assert.Equal(t, "accu-key", cfg.AccuWeatherAPIKey)
	assert.Equal(t, "jwt-secret", cfg.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.WeatherCacheTTL)
}

func TestParseEnv_LoadsDotEnvWithoutOverriding(t *testing.T) {
	t.Setenv(EnvAccuWeatherAPIKey, "from-process")
	// t.Setenv registers cleanup so godotenv's writes get undone too.
	t.Setenv(EnvPixabayAPIKey, "")
	t.Setenv(EnvDatabaseDSN, "")

	path := filepath.Join(t.TempDir(), ".env")
	content := EnvPixabayAPIKey + "=from-file\n" +
		EnvAccuWeatherAPIKey + "=also-from-file\n" +
		EnvDatabaseDSN + "=postgres://file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, os.Unsetenv(EnvPixabayAPIKey))
	require.NoError(t, os.Unsetenv(EnvDatabaseDSN))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, path)

	assert.Equal(t, "from-file", cfg.PixabayAPIKey)
	assert.Equal(t, "from-process", cfg.AccuWeatherAPIKey)
	assert.Equal(t, "postgres://file", cfg.DatabaseDSN)
}

func TestParseEnv_MissingFileIsIgnored(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseEnv(cfg, filepath.Join(t.TempDir(), "nope.env")) })
}

func TestParseEnv_BadTTLPanics(t *testing.T) {
	t.Setenv(EnvWeatherCacheTTL, "forever")
	require.Panics(t, func() { parseEnv(&Config{}, "") })
}
