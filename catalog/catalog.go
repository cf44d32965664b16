// Package catalog holds the fixed, ordered set of blog posts the site renders
// and resolves route identifiers to posts.
//
// A Catalog is built once at startup and never mutated afterwards, so it is
// safe to share between concurrent requests without locking.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when a route identifier does not name a post.
	ErrNotFound = errors.New("catalog: post not found")

	// ErrEmptyCatalog is returned by New when no posts are given.
	ErrEmptyCatalog = errors.New("catalog: no posts")

	// ErrInvalidPost is returned by New for a post that breaks the data model.
	ErrInvalidPost = errors.New("catalog: invalid post")

	// ErrDuplicateID is returned by New when two posts share an id.
	ErrDuplicateID = errors.New("catalog: duplicate post id")
)

// Route identifiers must be plain ASCII decimal digits. Signs, spaces and
// other number syntaxes are rejected before parsing.
var reDigits = regexp.MustCompile(`^[0-9]+$`)

// Post is one blog entry.
type Post struct {
	ID       int
	Title    string
	Excerpt  string
	Image    string // static asset path, e.g. "/meaninful.png"
	Date     string // display text, never parsed for ordering
	ReadTime string
	Category string
	Content  []string
}

// Catalog is an immutable, ordered sequence of posts.
type Catalog struct {
	posts []Post
}

// New validates posts and builds a Catalog from them. The given slice and the
// posts' Content slices are copied, so later changes by the caller are not seen.
func New(posts ...Post) (*Catalog, error) {
	if len(posts) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{posts: make([]Post, 0, len(posts))}
	seen := make(map[int]int, len(posts))
	for i, p := range posts {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: post at position %d has id %d", ErrInvalidPost, i, p.ID)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("%w: post %d has an empty title", ErrInvalidPost, p.ID)
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: id %d at positions %d and %d", ErrDuplicateID, p.ID, prev, i)
		}
		seen[p.ID] = i
		c.posts = append(c.posts, clonePost(p))
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. It is meant for catalogs
// defined in source code.
func MustNew(posts ...Post) *Catalog {
	c, err := New(posts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// All returns every post in catalog order.
func (c *Catalog) All() []Post {
	out := make([]Post, len(c.posts))
	for i, p := range c.posts {
		out[i] = clonePost(p)
	}
	return out
}

// Resolve maps a raw route identifier to a post. An empty rawID means the
// identifier was absent. The identifier is read as a 1-based position in the
// catalog, so "1" names the first post. Links are built from post ids, which
// only round-trip while ids run 1..n in catalog order, as they do in Default.
// Every failure, whether absent, malformed or out of range, is reported as
// ErrNotFound.
func (c *Catalog) Resolve(rawID string) (Post, error) {
	// also rejects the absent (empty) identifier
	if !reDigits.MatchString(rawID) {
		return Post{}, ErrNotFound
	}
	n, err := strconv.Atoi(rawID)
	if err != nil {
		// too large for an int
		return Post{}, ErrNotFound
	}
	p := n - 1
	if p < 0 || p >= len(c.posts) {
		return Post{}, ErrNotFound
	}
	return clonePost(c.posts[p]), nil
}

func clonePost(p Post) Post {
	p.Content = slices.Clone(p.Content)
	return p
}
