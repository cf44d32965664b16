package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the blog reads.
const EnvPrefix = "BLOG_"

// SiteConfig holds all configuration for the blog server.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Gingr Blog"`
	Tagline     string `env:"SITE_TAGLINE"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000"` // canonical URL for links, feed and sitemap
	Description string `env:"SITE_DESCRIPTION"`

	Addr      string `env:"ADDR" envDefault:":3000"`
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"` // debug, info, warn, error, off

	CacheMaxAge     time.Duration `env:"CACHE_MAX_AGE" envDefault:"1h"` // Cache-Control max-age of HTML pages
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads the configuration from BLOG_* environment variables.
// Variables from envFiles (default ".env") are loaded first without
// overriding the real environment; missing files are ignored.
func LoadConfig(envFiles ...string) (SiteConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return parseConfig(env.Options{Prefix: EnvPrefix})
}

func parseConfig(opts env.Options) (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return SiteConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Gingr Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.CacheMaxAge <= 0 {
		c.CacheMaxAge = time.Hour
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithAssets serves static assets from fsys instead of Config.StaticDir.
func WithAssets(fsys fs.FS) Option {
	return func(a *App) {
		a.assets = fsys
	}
}
