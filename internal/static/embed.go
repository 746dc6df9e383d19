// Package static holds the browser assets served under /static/.
package static

import "embed"

// FS contains the shell stylesheet and the live navigation client.
//
//go:embed shell.css shell.js
var FS embed.FS
