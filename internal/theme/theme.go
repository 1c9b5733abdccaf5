// Package theme defines the color palettes of the typing interface.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette.
type Theme struct {
	Name      string
	Correct   lipgloss.Color
	Incorrect lipgloss.Color
	Pending   lipgloss.Color
	Current   lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
}

// DefaultName is used when no theme was chosen.
const DefaultName = "dark"

var themes = []Theme{
	{Name: "dark", Correct: "#F0F0F0", Incorrect: "#FF4D4F", Pending: "#8C8C8C", Current: "#C89A3A", Accent: "#C89A3A", Muted: "#6E6E6E"},
	{Name: "light", Correct: "#1F1F1F", Incorrect: "#D4380D", Pending: "#A6A6A6", Current: "#7A5C12", Accent: "#7A5C12", Muted: "#8C8C8C"},
	{Name: "blue", Correct: "#DCEBFF", Incorrect: "#FF6B6B", Pending: "#5B7BA6", Current: "#4DA3FF", Accent: "#4DA3FF", Muted: "#4A6584"},
	{Name: "red", Correct: "#FFE3E0", Incorrect: "#FFD43B", Pending: "#A6615A", Current: "#FF5C4D", Accent: "#FF5C4D", Muted: "#7D4A45"},
	{Name: "yellow", Correct: "#FFF6D6", Incorrect: "#FF4D4F", Pending: "#A69A5B", Current: "#FFD23F", Accent: "#FFD23F", Muted: "#7F7548"},
	{Name: "green", Correct: "#E3FFE8", Incorrect: "#FF6B6B", Pending: "#5E9A6A", Current: "#3DDC84", Accent: "#3DDC84", Muted: "#4C7555"},
	{Name: "purple", Correct: "#F1E6FF", Incorrect: "#FF6B9A", Pending: "#8A70A8", Current: "#B57CFF", Accent: "#B57CFF", Muted: "#65537C"},
}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// All returns every theme in display order.
func All() []Theme {
	return append([]Theme(nil), themes...)
}

// Lookup finds a theme by case-insensitive name.
func Lookup(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Default returns the default theme.
func Default() Theme {
	t, _ := Lookup(DefaultName)
	return t
}

// Next returns the theme after name, wrapping around. Unknown names yield
// the first theme.
func Next(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Pending   lipgloss.Style
	Current   lipgloss.Style
	Accent    lipgloss.Style
	Muted     lipgloss.Style
}

// Styles builds the render styles for t.
func (t Theme) Styles() Styles {
	return Styles{
		Correct:   lipgloss.NewStyle().Foreground(t.Correct),
		Incorrect: lipgloss.NewStyle().Foreground(t.Incorrect),
		Pending:   lipgloss.NewStyle().Foreground(t.Pending),
		Current:   lipgloss.NewStyle().Foreground(t.Current),
		Accent:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(t.Muted),
	}
}
