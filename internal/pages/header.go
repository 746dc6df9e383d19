package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Header renders the top navigation. It does not mark the active page, so
// its markup is the same on every path.
func Header() templ.Component {
	var b strings.Builder
	b.WriteString(`<header class="header">`)
	b.WriteString(`<a class="header-brand" href="/">` + templ.EscapeString(Brand) + `</a>`)
	b.WriteString(`<nav class="header-nav">`)
	for _, e := range catalog {
		b.WriteString(`<a class="nav-link" href="` + templ.EscapeString(e.path) + `">`)
		b.WriteString(templ.EscapeString(e.title))
		b.WriteString(`</a>`)
	}
	b.WriteString(`</nav></header>`)
	markup := b.String()

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}
