// Package theme picks the page colors from the time of day.
package theme

import "time"

// Palette is the color scheme applied to the page for one part of the day.
type Palette struct {
	Name       string
	Primary    string
	Background string
	Text       string
	Accent     string
}

var (
	Morning = Palette{
		Name:       "morning",
		Primary:    "#87CEEB", // light sky blue
		Background: "#E6F4F1",
		Text:       "#333333",
		Accent:     "#4682B4",
	}
	Afternoon = Palette{
		Name:       "afternoon",
		Primary:    "#F0F8FF",
		Background: "#F0F8FF", // alice blue
		Text:       "#333333",
		Accent:     "#87CEEB",
	}
	Evening = Palette{
		Name:       "evening",
		Primary:    "#4169E1", // royal blue
		Background: "#F5F5F5",
		Text:       "#333333",
		Accent:     "#8A2BE2",
	}
	Night = Palette{
		Name:       "night",
		Primary:    "#191970", // midnight blue
		Background: "#2F4F4F",
		Text:       "#E0E0E0",
		Accent:     "#00CED1",
	}
)

// ForHour returns the palette for an hour of the day. Hours outside 0-23
// fall through to Night.
func ForHour(hour int) Palette {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// Current returns the palette for the wall-clock hour of now.
func Current(now time.Time) Palette {
	return ForHour(now.Hour())
}
