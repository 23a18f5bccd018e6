// Package view holds the mutable presentation state of the portfolio page
// and derives what the page looks like from it.
package view

import (
	"github.com/Zachkp/andre-portfolio/internal/i18n"
	"github.com/Zachkp/andre-portfolio/internal/theme"
)

// Header scale keyframes: a scroll offset of -100 scales the header to
// 1.2, 0 leaves it at 1 and 100 shrinks it to 0.8. Offsets beyond the
// range are clamped.
const (
	scrollMin = -100.0
	scrollMax = 100.0
	scaleMax  = 1.2
	scaleMid  = 1.0
	scaleMin  = 0.8
)

const (
	darkBackground       = "#121212"
	darkHeaderBackground = "#333"
	darkTitle            = "#fff"
	darkSubtitle         = "#ddd"
	lightTitle           = "#000"
	lightSubtitle        = "#333"
)

// State is one visitor's view of the page.
type State struct {
	Language             i18n.Language
	DarkMode             bool
	LanguageModalVisible bool
	ScrollY              float64
}

// Appearance is the set of colors the page is drawn with.
type Appearance struct {
	Background       string
	HeaderBackground string
	Title            string
	Subtitle         string
	Palette          theme.Palette
}

// NewState returns the state of a first visit.
func NewState(lang i18n.Language) State {
	return State{Language: lang}
}

// SelectLanguage switches the language and dismisses the picker.
func (s *State) SelectLanguage(lang i18n.Language) {
	s.Language = lang
	s.LanguageModalVisible = false
}

func (s *State) ToggleDarkMode() {
	s.DarkMode = !s.DarkMode
}

func (s *State) OpenLanguageModal() {
	s.LanguageModalVisible = true
}

func (s *State) CloseLanguageModal() {
	s.LanguageModalVisible = false
}

// SetScroll records the page's vertical scroll offset.
func (s *State) SetScroll(y float64) {
	s.ScrollY = y
}

// HeaderScale maps the scroll offset onto the header's scale factor.
func (s State) HeaderScale() float64 {
	return interpolate(s.ScrollY)
}

// Labels returns the captions for the selected language.
func (s State) Labels() i18n.Labels {
	labels, err := i18n.Lookup(s.Language)
	if err != nil {
		return i18n.MustLookup(i18n.Default)
	}
	return labels
}

// Appearance resolves the page colors for the given time-of-day palette.
func (s State) Appearance(p theme.Palette) Appearance {
	if s.DarkMode {
		return Appearance{
			Background:       darkBackground,
			HeaderBackground: darkHeaderBackground,
			Title:            darkTitle,
			Subtitle:         darkSubtitle,
			Palette:          p,
		}
	}
	return Appearance{
		Background:       p.Background,
		HeaderBackground: p.Primary,
		Title:            lightTitle,
		Subtitle:         lightSubtitle,
		Palette:          p,
	}
}

// DarkModeIcon is the glyph on the dark mode toggle.
func (s State) DarkModeIcon() string {
	if s.DarkMode {
		return "☀️"
	}
	return "🌙"
}

func interpolate(y float64) float64 {
	switch {
	case y <= scrollMin:
		return scaleMax
	case y >= scrollMax:
		return scaleMin
	case y < 0:
		return scaleMid + (y/scrollMin)*(scaleMax-scaleMid)
	default:
		return scaleMid - (y/scrollMax)*(scaleMid-scaleMin)
	}
}
