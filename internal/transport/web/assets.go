package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed assets/index.html assets/static
var assets embed.FS

func parsePage() (*template.Template, error) {
	return template.New("index.html").Funcs(template.FuncMap{
		// rendered lines are escaped and linkified by pkg/conv
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(assets, "assets/index.html")
}

func staticFS() (fs.FS, error) {
	return fs.Sub(assets, "assets/static")
}
