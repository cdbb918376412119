package views

import "embed"

//go:embed *.html *.tmpl
var FS embed.FS
