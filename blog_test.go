package blog

import (
	"bytes"
	"encoding/xml"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingr/blog/catalog"
)

func testAssets(t *testing.T) fstest.MapFS {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))))
	return fstest.MapFS{
		"meaninful.png": {Data: buf.Bytes()},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := SiteConfig{URL: "https://gingr.example/", LogLevel: "off"}
	return New(cfg, catalog.Default(), WithAssets(testAssets(t)))
}

func get(t *testing.T, a *App, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec.Result()
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestListPage(t *testing.T) {
	a := newTestApp(t)
	resp := get(t, a, "/blogs")
	out := body(t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=UTF-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Equal(t, a.Catalog.Len(), strings.Count(out, `<article class="card"`))
	assert.Contains(t, out, `src="/public/meaninful.png" alt="Building Meaningful Connections in the Digital Age" width="40" height="20"`)
}

func TestListLinksRoundTrip(t *testing.T) {
	a := newTestApp(t)
	list := body(t, get(t, a, "/blogs"))

	for _, p := range a.Catalog.All() {
		link := "/blogs/" + strconv.Itoa(p.ID)
		require.Contains(t, list, `href="`+link+`"`)

		resp := get(t, a, link)
		out := body(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode, link)
		assert.Contains(t, out, `data-post-id="`+strconv.Itoa(p.ID)+`"`)
		assert.Contains(t, out, "<h1>"+p.Title+"</h1>")
	}
}

func TestPostPage(t *testing.T) {
	a := newTestApp(t)
	resp := get(t, a, "/blogs/3")
	out := body(t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out, "Finding Your Tribe: Interest-Based Communities")
	assert.Contains(t, out, "March 10, 2024 &middot; 6 min read")
	assert.Contains(t, out, `href="/blogs"`)
}

func TestPostNotFound(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/blogs/0", "/blogs/5", "/blogs/abc", "/blogs/1a", "/blogs/-1"} {
		t.Run(target, func(t *testing.T) {
			resp := get(t, a, target)
			out := body(t, resp)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Contains(t, out, "Post not found.")
			assert.NotContains(t, out, `class="back"`)
		})
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)

	resp := get(t, a, "/blogs/3/")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/blogs/3", resp.Header.Get("Location"))

	resp = get(t, a, "/blogs/")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/blogs", resp.Header.Get("Location"))
}

func TestRootRedirect(t *testing.T) {
	resp := get(t, newTestApp(t), "/")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/blogs", resp.Header.Get("Location"))
}

func TestUnknownRoute(t *testing.T) {
	resp := get(t, newTestApp(t), "/nope")
	out := body(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, out, "Page not found")
}

func TestStaticAssets(t *testing.T) {
	a := newTestApp(t)

	resp := get(t, a, "/public/meaninful.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=31536000, immutable", resp.Header.Get("Cache-Control"))

	resp = get(t, a, "/public/missing.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFeed(t *testing.T) {
	a := newTestApp(t)
	resp := get(t, a, "/feed.xml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/rss+xml; charset=utf-8", resp.Header.Get("Content-Type"))

	var feed rssXML
	require.NoError(t, xml.Unmarshal([]byte(body(t, resp)), &feed))
	assert.Equal(t, "Gingr Blog", feed.Channel.Title)
	assert.Equal(t, "https://gingr.example/blogs", feed.Channel.Link)

	posts := a.Catalog.All()
	require.Len(t, feed.Channel.Items, len(posts))
	for i, p := range posts {
		item := feed.Channel.Items[i]
		assert.Equal(t, p.Title, item.Title)
		assert.Equal(t, "https://gingr.example/blogs/"+strconv.Itoa(p.ID), item.Link)
		assert.Equal(t, p.Category, item.Category)
	}
	assert.Equal(t, "Fri, 15 Mar 2024 00:00:00 +0000", feed.Channel.Items[0].PubDate)
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	resp := get(t, a, "/sitemap.xml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=86400", resp.Header.Get("Cache-Control"))

	var sm sitemapURLSet
	require.NoError(t, xml.Unmarshal([]byte(body(t, resp)), &sm))
	require.Len(t, sm.URLs, a.Catalog.Len()+1)
	assert.Equal(t, "https://gingr.example/blogs", sm.URLs[0].Loc)
	assert.Equal(t, "https://gingr.example/blogs/1", sm.URLs[1].Loc)
	assert.Equal(t, "2024-03-15", sm.URLs[1].LastMod)
}

func TestRobots(t *testing.T) {
	out := body(t, get(t, newTestApp(t), "/robots.txt"))
	assert.Contains(t, out, "Sitemap: https://gingr.example/sitemap.xml")
}

func TestHealth(t *testing.T) {
	resp := get(t, newTestApp(t), "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "ok", body(t, resp))
}

func TestSecurityHeaders(t *testing.T) {
	resp := get(t, newTestApp(t), "/blogs")
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, contentSecurityPolicy, resp.Header.Get("Content-Security-Policy"))
}

func TestParseDisplayDate(t *testing.T) {
	got, ok := parseDisplayDate("March 8, 2024")
	require.True(t, ok)
	assert.Equal(t, "2024-03-08", got.Format("2006-01-02"))

	_, ok = parseDisplayDate("sometime in spring")
	assert.False(t, ok)
}
