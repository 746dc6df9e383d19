package shell

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ContentRegionID is the id of the element that hosts the active page.
const ContentRegionID = "shell-content"

// Frame wraps content with the persistent header. It holds no state: the same
// header component is rendered whatever the content is.
func Frame(header, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="app-shell">`); err != nil {
			return err
		}
		if err := header.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main id="`+ContentRegionID+`" class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></div>`)
		return err
	})
}

// Document renders a complete HTML page around body. When live is set the
// navigation client script is included.
func Document(title string, body templ.Component, live bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head>` +
			`<meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<link rel="stylesheet" href="/static/shell.css">` +
			`</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if live {
			if _, err := io.WriteString(w, `<script src="/static/shell.js" defer></script>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
