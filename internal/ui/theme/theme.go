package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: ink on paper, with a red seal accent
var (
	Primary = lipgloss.Color("#B91C1C") // Seal Red
	Accent  = lipgloss.Color("#D97706") // Amber
	Success = lipgloss.Color("#15803D") // Jade
	Error   = lipgloss.Color("#E11D48") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#475569") // Slate
)

// ornaments maps a catalog theme style to its ornament color.
var ornaments = map[string]color.Color{
	"red":    lipgloss.Color("#DC2626"),
	"silver": lipgloss.Color("#CBD5E1"),
	"green":  lipgloss.Color("#16A34A"),
	"white":  lipgloss.Color("#F1F5F9"),
	"gold":   lipgloss.Color("#EAB308"),
}

// Ornament returns the color for a theme style, Primary when unknown.
func Ornament(style string) color.Color {
	if c, ok := ornaments[style]; ok {
		return c
	}
	return Primary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		MarginTop(1)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Translation = lipgloss.NewStyle().
			Foreground(TextDim).
			PaddingLeft(2)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Word = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
