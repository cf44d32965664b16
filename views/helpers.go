package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/gingr/blog/catalog"
)

// ListPath is the path of the listing page.
const ListPath = "/blogs"

// PostPath returns the path of the detail page for the post with the given id.
func PostPath(id int) string {
	return ListPath + "/" + strconv.Itoa(id)
}

// BuildURL joins path segments onto a base URL.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// AssetURL returns the public URL of a static asset referenced by a post.
func (cfg SiteConfig) AssetURL(asset string) string {
	if strings.Contains(asset, "://") {
		return asset
	}
	return path.Join("/", cfg.AssetPrefix, asset)
}

func (cfg SiteConfig) absoluteAssetURL(asset string) string {
	u := cfg.AssetURL(asset)
	if strings.Contains(u, "://") {
		return u
	}
	return BuildURL(cfg.URL, u)
}

// WebsiteJsonLD produces a Schema.org Blog JSON-LD block for the listing page.
func WebsiteJsonLD(cfg SiteConfig, posts []catalog.Post) string {
	entries := make([]map[string]string, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, map[string]string{
			"@type":    "BlogPosting",
			"headline": p.Title,
			"url":      BuildURL(cfg.URL, PostPath(p.ID)),
		})
	}
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Blog",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL, ListPath),
		"blogPost": entries,
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	return marshalJSONLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post catalog.Post) string {
	postURL := BuildURL(cfg.URL, PostPath(post.ID))
	data := map[string]interface{}{
		"@context":       "https://schema.org",
		"@type":          "BlogPosting",
		"headline":       post.Title,
		"description":    post.Excerpt,
		"url":            postURL,
		"articleSection": post.Category,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Image != "" {
		data["image"] = cfg.absoluteAssetURL(post.Image)
	}
	return marshalJSONLD(data)
}

func marshalJSONLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
