package main

import (
	"embed"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/Zachkp/andre-portfolio/internal/components"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

func parseTemplates() (*template.Template, error) {
	funcs := components.Funcs()
	funcs["outURL"] = outURL
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// outURL is the tracked redirect for a link code.
func outURL(code string) string {
	return "/out/" + url.PathEscape(code)
}
