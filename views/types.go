package views

import "github.com/gingr/blog/assets"

// SiteConfig holds site-wide settings the templates read. It is built once at
// startup from the server configuration.
type SiteConfig struct {
	Name        string // page title suffix and listing heading
	Tagline     string // listing subheading
	URL         string // canonical base URL, no trailing slash
	Description string // meta description of the listing page
	AssetPrefix string // URL prefix static assets are served under
	Sizes       assets.Sizes
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
}
