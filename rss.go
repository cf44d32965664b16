package blog

import (
	"encoding/xml"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gingr/blog/catalog"
	"github.com/gingr/blog/views"
)

// displayDateLayout is the layout post dates are written in, e.g. "March 15, 2024".
const displayDateLayout = "January 2, 2006"

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// parseDisplayDate reads a post's display date. Dates in any other format
// are reported as not ok and left out of feeds.
func parseDisplayDate(s string) (time.Time, bool) {
	t, err := time.Parse(displayDateLayout, s)
	return t, err == nil
}

func (a *App) renderRSS(c echo.Context, posts []catalog.Post) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, ok := parseDisplayDate(p.Date); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := views.BuildURL(base, views.PostPath(p.ID))
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			Category:    p.Category,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	description := a.Config.Description
	if description == "" {
		description = a.site.Tagline
	}
	if description == "" {
		description = views.DefaultTagline
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        views.BuildURL(base, views.ListPath),
			Description: description,
			Items:       items,
		},
	}
	return renderXML(c, "application/rss+xml; charset=utf-8", feed)
}
