// Package content loads the static portfolio data shown on the page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

var ErrUnknownLink = errors.New("unknown link")

// ResumeEntry is one line of the work history.
type ResumeEntry struct {
	Date        string `yaml:"date" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// Link is an external destination rendered as a tappable label. The URL is
// not checked for well-formedness.
type Link struct {
	Code  string `yaml:"code" validate:"required"`
	Title string `yaml:"title" validate:"required"`
	URL   string `yaml:"url" validate:"required"`
}

type Phone struct {
	Display string `yaml:"display"`
	Dial    string `yaml:"dial"`
}

// Portfolio is everything the page displays apart from the labels.
type Portfolio struct {
	Name            string        `yaml:"name" validate:"required"`
	ProfileImage    string        `yaml:"profile_image" validate:"required"`
	Born            string        `yaml:"born"`
	Address         string        `yaml:"address"`
	Email           string        `yaml:"email" validate:"required"`
	Phone           Phone         `yaml:"phone"`
	Footer          string        `yaml:"footer"`
	Social          []Link        `yaml:"social" validate:"dive"`
	Resume          []ResumeEntry `yaml:"resume" validate:"required,dive"`
	WorkSamples     []Link        `yaml:"work_samples" validate:"dive"`
	Certificates    []Link        `yaml:"certificates" validate:"dive"`
	SpokenLanguages []string      `yaml:"spoken_languages"`
}

// Load parses the embedded portfolio.
func Load() (*Portfolio, error) {
	return Parse(portfolioYAML)
}

// Parse decodes and checks a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	if err := validator.New().Struct(p); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}
	seen := make(map[string]bool)
	for _, l := range p.Links() {
		if seen[l.Code] {
			return nil, fmt.Errorf("invalid portfolio: duplicate link code %q", l.Code)
		}
		seen[l.Code] = true
	}
	return &p, nil
}

// Links returns every link in page order.
func (p *Portfolio) Links() []Link {
	out := make([]Link, 0, len(p.Social)+len(p.WorkSamples)+len(p.Certificates))
	out = append(out, p.Social...)
	out = append(out, p.WorkSamples...)
	out = append(out, p.Certificates...)
	return out
}

// Link finds a link by its code.
func (p *Portfolio) Link(code string) (Link, error) {
	for _, l := range p.Links() {
		if l.Code == code {
			return l, nil
		}
	}
	return Link{}, fmt.Errorf("%w: %q", ErrUnknownLink, code)
}

// MailtoURL and TelURL are built from trusted content only, so they are
// handed to templates as URLs without the http(s) scheme filter.
func (p *Portfolio) MailtoURL() template.URL { return template.URL("mailto:" + p.Email) }

func (p *Portfolio) TelURL() template.URL { return template.URL("tel:" + p.Phone.Dial) }
