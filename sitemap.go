package blog

import (
	"encoding/xml"

	"github.com/labstack/echo/v4"

	"github.com/gingr/blog/catalog"
	"github.com/gingr/blog/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) renderSitemap(c echo.Context, posts []catalog.Post) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: views.BuildURL(base, views.ListPath)},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: views.BuildURL(base, views.PostPath(p.ID))}
		if t, ok := parseDisplayDate(p.Date); ok {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	return renderXML(c, "application/xml; charset=utf-8", sitemap)
}
