package main

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/Zachkp/andre-portfolio/internal/components"
	"github.com/Zachkp/andre-portfolio/internal/content"
	"github.com/Zachkp/andre-portfolio/internal/i18n"
	"github.com/Zachkp/andre-portfolio/internal/theme"
	"github.com/Zachkp/andre-portfolio/internal/view"
)

// pageData is what every page template and fragment renders from.
type pageData struct {
	State     view.State
	Labels    i18n.Labels
	Look      view.Appearance
	Portfolio *content.Portfolio
	Languages []i18n.Option
	Scale     string
	Sections  []template.HTML
}

type sectionDef struct {
	title func(i18n.Labels) string
	body  string
}

// Sections in the order they appear on the page.
var sectionOrder = []sectionDef{
	{func(l i18n.Labels) string { return l.About }, "about-body"},
	{func(l i18n.Labels) string { return l.Resume }, "resume-body"},
	{func(l i18n.Labels) string { return l.WorkSamples }, "work-samples-body"},
	{func(l i18n.Labels) string { return l.Skills }, "skills-body"},
	{func(l i18n.Labels) string { return l.Certificates }, "certificates-body"},
}

// page assembles the data for st drawn with palette p.
func (s *server) page(st view.State, p theme.Palette) (*pageData, error) {
	data := &pageData{
		State:     st,
		Labels:    st.Labels(),
		Look:      st.Appearance(p),
		Portfolio: s.portfolio,
		Languages: i18n.Languages(),
		Scale:     strconv.FormatFloat(st.HeaderScale(), 'f', 3, 64),
	}

	for _, def := range sectionOrder {
		var buf bytes.Buffer
		if err := s.templates.ExecuteTemplate(&buf, def.body, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", def.body, err)
		}
		section, err := components.Section(def.title(data.Labels), template.HTML(buf.String()))
		if err != nil {
			return nil, err
		}
		data.Sections = append(data.Sections, section)
	}
	return data, nil
}
