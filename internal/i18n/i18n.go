// Package i18n holds the label strings shown on the page in each supported
// language.
package i18n

import (
	"errors"
	"fmt"
	"strings"
)

// Language is a supported display language code.
type Language string

const (
	German  Language = "de"
	English Language = "en"
)

// Default is the language a new visitor sees.
const Default = German

var ErrUnknownLanguage = errors.New("unknown language")

// Labels are the translated captions used by the page.
type Labels struct {
	About        string
	Resume       string
	WorkSamples  string
	Certificates string
	Skills       string
	Languages    string
	// Toggle is the short caption on the language picker button.
	Toggle string
}

// Option is one entry of the language picker.
type Option struct {
	Code  Language
	Label string
}

var table = map[Language]Labels{
	German: {
		About:        "Über mich",
		Resume:       "Lebenslauf",
		WorkSamples:  "Arbeitsproben",
		Certificates: "Zeugnisse",
		Skills:       "Kenntnisse & Fähigkeiten",
		Languages:    "Sprachen",
		Toggle:       "DE",
	},
	English: {
		About:        "About Me",
		Resume:       "Resume",
		WorkSamples:  "Work Samples",
		Certificates: "Certificates",
		Skills:       "Skills & Competencies",
		Languages:    "Languages",
		Toggle:       "ENG",
	},
}

var options = []Option{
	{Code: German, Label: "🇩🇪 Deutsch"},
	{Code: English, Label: "🇬🇧 English"},
}

// Parse validates a language code received from a request.
func Parse(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := table[lang]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return lang, nil
}

// Lookup returns the labels for lang.
func Lookup(lang Language) (Labels, error) {
	labels, ok := table[lang]
	if !ok {
		return Labels{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(lang))
	}
	return labels, nil
}

// MustLookup is Lookup for codes that already passed Parse.
func MustLookup(lang Language) Labels {
	labels, err := Lookup(lang)
	if err != nil {
		panic(err)
	}
	return labels
}

// Languages lists the picker entries in display order.
func Languages() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
