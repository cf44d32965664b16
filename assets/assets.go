// Package assets reads metadata of the static images referenced by posts.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/webp"
)

// Size is the pixel size of an image. A zero Size means unknown.
type Size struct {
	Width  int
	Height int
}

// Known reports whether both dimensions were read.
func (s Size) Known() bool {
	return s.Width > 0 && s.Height > 0
}

// Sizes maps asset paths, as written in posts, to their pixel size.
type Sizes map[string]Size

// Lookup returns the size recorded for p, or a zero Size.
func (s Sizes) Lookup(p string) Size {
	return s[p]
}

// Probe decodes the header of every image in paths from fsys. Paths may carry
// a leading slash. Images that are missing or undecodable are left out of the
// result and reported in errs; probing continues with the next path.
func Probe(fsys fs.FS, paths ...string) (sizes Sizes, errs []error) {
	sizes = make(Sizes, len(paths))
	for _, p := range paths {
		if _, ok := sizes[p]; ok {
			continue
		}
		size, err := probeOne(fsys, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sizes[p] = size
	}
	return sizes, errs
}

func probeOne(fsys fs.FS, p string) (Size, error) {
	name := FSPath(p)
	if !fs.ValidPath(name) || name == "." {
		return Size{}, fmt.Errorf("probe %q: invalid asset path", p)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return Size{}, fmt.Errorf("probe %q: %w", p, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, fmt.Errorf("probe %q: decode: %w", p, err)
	}
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}

// FSPath converts an asset path like "/img/a.png" into an fs.FS name.
func FSPath(p string) string {
	return path.Clean(strings.TrimPrefix(p, "/"))
}
