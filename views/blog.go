package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/gingr/blog/catalog"
)

// DefaultTagline is the listing subheading used when none is configured.
const DefaultTagline = "Insights, stories, and tips for building meaningful college connections"

// BlogList renders the listing page: one card per post, in the order given.
func BlogList(cfg SiteConfig, posts []catalog.Post) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         BuildURL(cfg.URL, ListPath),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(cfg, posts),
	}
	if meta.Description == "" {
		meta.Description = cfg.tagline()
	}
	return Layout(cfg, meta, blogSection(cfg, posts))
}

func blogSection(cfg SiteConfig, posts []catalog.Post) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		h.raw(`<header class="list-header"><h1>`)
		h.text(cfg.Name)
		h.raw(`</h1><p>`)
		h.text(cfg.tagline())
		h.raw(`</p></header><section class="grid">`)
		for _, p := range posts {
			postCard(h, cfg, p)
		}
		h.raw(`</section>`)
		return nil
	})
}

func postCard(h *html, cfg SiteConfig, p catalog.Post) {
	h.raw(`<article class="card"`)
	h.attr("data-post-id", strconv.Itoa(p.ID))
	h.raw(`><div class="card-image">`)
	image(h, cfg, p, true)
	h.raw(`</div><div class="card-body"><div class="date">`)
	h.text(p.Date)
	h.raw(` · `)
	h.text(p.ReadTime)
	h.raw(`</div><span class="category">`)
	h.text(p.Category)
	h.raw(`</span><h2>`)
	h.text(p.Title)
	h.raw(`</h2><p>`)
	h.text(p.Excerpt)
	h.raw(`</p><a class="read-more"`)
	h.urlAttr("href", PostPath(p.ID))
	h.raw(`>Read More →</a></div></article>`)
}

// BlogPost renders the detail page of a single post.
func BlogPost(cfg SiteConfig, post catalog.Post) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Excerpt,
		URL:         BuildURL(cfg.URL, PostPath(post.ID)),
		OGType:      "article",
		JSONLD:      BlogPostingJsonLD(cfg, post),
	}
	if post.Image != "" {
		meta.Image = cfg.absoluteAssetURL(post.Image)
	}
	return Layout(cfg, meta, postArticle(cfg, post))
}

func postArticle(cfg SiteConfig, post catalog.Post) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		h.raw(`<article`)
		h.attr("data-post-id", strconv.Itoa(post.ID))
		h.raw(`><header class="post-header">`)
		image(h, cfg, post, false)
		h.raw(`<div class="post-header-content"><span class="category">`)
		h.text(post.Category)
		h.raw(`</span><h1>`)
		h.text(post.Title)
		h.raw(`</h1><div class="date">`)
		h.text(post.Date)
		h.raw(` &middot; `)
		h.text(post.ReadTime)
		h.raw(`</div></div></header><div class="post-body"><a class="back"`)
		h.urlAttr("href", ListPath)
		h.raw(`>&larr; Back to Blogs</a><p class="excerpt">`)
		h.text(post.Excerpt)
		h.raw(`</p>`)
		for _, para := range post.Content {
			h.raw(`<p class="paragraph">`)
			h.text(para)
			h.raw(`</p>`)
		}
		h.raw(`</div></article>`)
		return nil
	})
}

// PostNotFound renders the message shown when a detail route does not
// resolve to a post. It deliberately has no link back.
func PostNotFound(cfg SiteConfig) templ.Component {
	body := component(func(ctx context.Context, h *html) error {
		h.raw(`<h1 class="message">Post not found.</h1>`)
		return nil
	})
	return Layout(cfg, PageMeta{Title: "Post not found"}, body)
}

func image(h *html, cfg SiteConfig, p catalog.Post, lazy bool) {
	if p.Image == "" {
		return
	}
	h.raw(`<img`)
	h.urlAttr("src", cfg.AssetURL(p.Image))
	h.attr("alt", p.Title)
	if size := cfg.Sizes.Lookup(p.Image); size.Known() {
		h.intAttr("width", size.Width)
		h.intAttr("height", size.Height)
	}
	if lazy {
		h.raw(` loading="lazy"`)
	}
	h.raw(`>`)
}

func (cfg SiteConfig) tagline() string {
	if cfg.Tagline != "" {
		return cfg.Tagline
	}
	return DefaultTagline
}
