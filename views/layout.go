package views

import (
	"context"

	"github.com/a-h/templ"
)

// Layout wraps body in the site's HTML document.
func Layout(cfg SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		title := cfg.Name
		if meta.Title != "" && meta.Title != cfg.Name {
			title = meta.Title + " | " + cfg.Name
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		if meta.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", meta.Description)
			h.raw(`>`)
		}
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.urlAttr("href", meta.URL)
			h.raw(`><meta property="og:url"`)
			h.attr("content", meta.URL)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:site_name"`)
		h.attr("content", cfg.Name)
		h.raw(`><meta property="og:title"`)
		h.attr("content", title)
		h.raw(`>`)
		if meta.OGType != "" {
			h.raw(`<meta property="og:type"`)
			h.attr("content", meta.OGType)
			h.raw(`>`)
		}
		if meta.Description != "" {
			h.raw(`<meta property="og:description"`)
			h.attr("content", meta.Description)
			h.raw(`>`)
		}
		if meta.Image != "" {
			h.raw(`<meta property="og:image"`)
			h.attr("content", meta.Image)
			h.raw(`>`)
		}
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", cfg.Name)
		h.raw(` href="/feed.xml">`)
		h.raw(`<style>`)
		h.raw(stylesheet)
		h.raw(`</style>`)
		if meta.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the script early.
			h.raw(`<script type="application/ld+json">`)
			h.raw(meta.JSONLD)
			h.raw(`</script>`)
		}
		h.raw(`</head><body><main class="main">`)
		if err := body.Render(ctx, h); err != nil {
			return err
		}
		h.raw(`</main></body></html>`)
		return nil
	})
}
