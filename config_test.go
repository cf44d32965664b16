package blog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(env.Options{Prefix: EnvPrefix, Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "Gingr Blog", cfg.Name)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.CacheMaxAge)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := parseConfig(env.Options{
		Prefix: EnvPrefix,
		Environment: map[string]string{
			"BLOG_SITE_NAME":        "Campus Notes",
			"BLOG_SITE_URL":         "https://blog.gingr.example/",
			"BLOG_ADDR":             ":8080",
			"BLOG_CACHE_MAX_AGE":    "5m",
			"BLOG_SHUTDOWN_TIMEOUT": "30s",
			"SITE_NAME":             "ignored without prefix",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Campus Notes", cfg.Name)
	assert.Equal(t, "https://blog.gingr.example", cfg.URL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.CacheMaxAge)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestParseConfigInvalidDuration(t *testing.T) {
	_, err := parseConfig(env.Options{
		Prefix:      EnvPrefix,
		Environment: map[string]string{"BLOG_CACHE_MAX_AGE": "soon"},
	})
	assert.Error(t, err)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.env")
	require.NoError(t, os.WriteFile(path, []byte("BLOG_SITE_TAGLINE=From the file\nBLOG_ADDR=:9999\n"), 0o644))

	// real environment wins over the file
	t.Setenv("BLOG_ADDR", ":7000")
	t.Cleanup(func() { os.Unsetenv("BLOG_SITE_TAGLINE") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "From the file", cfg.Tagline)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, parseLogLevel("debug"))
	assert.Equal(t, log.WARN, parseLogLevel(" Warning "))
	assert.Equal(t, log.OFF, parseLogLevel("off"))
	assert.Equal(t, log.INFO, parseLogLevel(""))
}
