package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Board  BoardTheme
	Footer FooterTheme
}

// BoardTheme groups styles used by the board panes.
type BoardTheme struct {
	Title       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Counts      lipgloss.Style
	Totals      lipgloss.Style
	Question    lipgloss.Style
	Answer      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Filter lipgloss.Style
}

const accentHex = "#ff5fd7"

// Default returns the built-in theme. The muted shades are blended from
// the accent so a single hex swap restyles the whole UI.
func Default() Theme {
	return Theme{
		Board: BoardTheme{
			Title:       lipgloss.NewStyle().Bold(true),
			ActiveTab:   lipgloss.NewStyle().Foreground(lipgloss.Color(accentHex)).Bold(true),
			InactiveTab: lipgloss.NewStyle().Foreground(dim(accentHex, 0.75)),
			Counts:      lipgloss.NewStyle().Foreground(dim(accentHex, 0.65)),
			Totals:      lipgloss.NewStyle().Bold(true),
			Question:    lipgloss.NewStyle().Bold(true),
			Answer:      lipgloss.NewStyle().Foreground(dim(accentHex, 0.55)),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(dim(accentHex, 0.65)),
			Status: lipgloss.NewStyle().Foreground(dim(accentHex, 0.70)),
			Filter: lipgloss.NewStyle().Foreground(dim(accentHex, 0.80)),
		},
	}
}

// dim blends the color toward a neutral gray in Lab space; amount 0 keeps
// the color, 1 reaches the gray.
func dim(hex string, amount float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	gray := colorful.Color{R: 0.45, G: 0.45, B: 0.45}
	return lipgloss.Color(c.BlendLab(gray, amount).Clamped().Hex())
}
