// Package blog serves the Gingr marketing blog: a listing of post summaries
// and a detail page per post, rendered with templ over an in-memory catalog.
//
// The catalog is built by the caller and injected into the App, which wires
// Echo routes, middleware, feeds and static assets around it.
package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/gingr/blog/assets"
	"github.com/gingr/blog/catalog"
	"github.com/gingr/blog/views"
)

// assetPrefix is the URL prefix static assets are served under.
const assetPrefix = "/public"

// App is the central blog application. It wires together the catalog,
// handlers, middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *catalog.Catalog

	site   views.SiteConfig
	assets fs.FS
}

// New creates an App serving posts. Routes and middleware are registered
// immediately, so a.Echo can be used as an http.Handler before Start.
func New(cfg SiteConfig, posts *catalog.Catalog, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Catalog: posts,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.assets == nil {
		a.assets = os.DirFS(cfg.StaticDir)
	}

	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(parseLogLevel(cfg.LogLevel))
	a.site = a.siteConfig()

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// Start serves HTTP on Config.Addr until ctx is cancelled, then shuts the
// server down gracefully within Config.ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("blog: serve: %w", err)
	case <-ctx.Done():
	}

	a.Echo.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	shutdownErr := a.Echo.Shutdown(shutdownCtx)

	// Shutdown can run before Start has opened its listener. Serve then
	// returns at once and closes it, so wait for that before returning.
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("blog: serve: %w", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("blog: shutdown: %w", shutdownErr)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.StaticFS(assetPrefix, a.assets)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", handleHealth)

	e.GET("/", handleRootRedirect)
	e.GET(views.ListPath, a.handleList)
	e.GET(views.ListPath+"/:id", a.handlePost)
}

// siteConfig builds the view settings, reading image sizes from the asset
// directory. Images that cannot be read are logged and rendered without
// width and height.
func (a *App) siteConfig() views.SiteConfig {
	posts := a.Catalog.All()
	paths := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Image != "" && !strings.Contains(p.Image, "://") {
			paths = append(paths, p.Image)
		}
	}
	sizes, errs := assets.Probe(a.assets, paths...)
	for _, err := range errs {
		a.Echo.Logger.Warnf("asset: %v", err)
	}

	return views.SiteConfig{
		Name:        a.Config.Name,
		Tagline:     a.Config.Tagline,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		AssetPrefix: assetPrefix,
		Sizes:       sizes,
	}
}

func parseLogLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
