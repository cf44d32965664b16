package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// html accumulates markup for a single component render.
type html struct {
	bytes.Buffer
}

// raw writes trusted markup.
func (h *html) raw(s string) {
	h.WriteString(s)
}

// text writes s escaped for element content.
func (h *html) text(s string) {
	h.WriteString(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name, value string) {
	h.WriteByte(' ')
	h.WriteString(name)
	h.WriteString(`="`)
	h.WriteString(templ.EscapeString(value))
	h.WriteByte('"')
}

// urlAttr writes a URL attribute, replacing unsafe schemes.
func (h *html) urlAttr(name, u string) {
	h.attr(name, string(templ.URL(u)))
}

func (h *html) intAttr(name string, v int) {
	h.attr(name, strconv.Itoa(v))
}

// component turns a markup builder into a templ.Component. Children are
// rendered into the same buffer so nothing reaches w unless the whole tree
// rendered without error.
func component(build func(ctx context.Context, h *html) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var h html
		if err := build(ctx, &h); err != nil {
			return err
		}
		_, err := w.Write(h.Bytes())
		return err
	})
}
