package views

import (
	"context"

	"github.com/a-h/templ"
)

// NotFound renders the page for routes that do not exist.
func NotFound(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the page for unexpected failures.
func ServerError(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg SiteConfig, title, detail string) templ.Component {
	body := component(func(ctx context.Context, h *html) error {
		h.raw(`<section class="post-body"><h1 class="message">`)
		h.text(title)
		h.raw(`</h1><p class="paragraph">`)
		h.text(detail)
		h.raw(`</p><a class="back"`)
		h.urlAttr("href", ListPath)
		h.raw(`>&larr; Back to Blogs</a></section>`)
		return nil
	})
	return Layout(cfg, PageMeta{Title: title}, body)
}
