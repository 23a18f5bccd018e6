// Package components renders the page's reusable building blocks.
package components

import (
	"bytes"
	"fmt"
	"html/template"
)

var (
	sectionTmpl = template.Must(template.New("section").Parse(
		`<section class="section"><h2 class="section-title">{{.Title}}</h2>{{.Body}}</section>`))

	linkButtonTmpl = template.Must(template.New("link-button").Parse(
		`<a class="button" href="{{.Href}}" target="_blank" rel="noopener">{{.Title}}</a>`))
)

// Section wraps body in a titled box. The body is emitted unchanged.
func Section(title string, body template.HTML) (template.HTML, error) {
	return render(sectionTmpl, struct {
		Title string
		Body  template.HTML
	}{title, body})
}

// LinkButton renders a tappable label pointing at href. The href is written
// as given; opening it is left to the browser.
func LinkButton(title, href string) (template.HTML, error) {
	return render(linkButtonTmpl, struct {
		Title string
		Href  template.URL
	}{title, template.URL(href)})
}

// Funcs exposes the components to page templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"section":    Section,
		"linkButton": LinkButton,
	}
}

func render(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return template.HTML(buf.String()), nil
}
