package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the board UI.
type Theme struct {
	Dark   bool
	Board  lipgloss.Style
	Header HeaderTheme
	Footer FooterTheme
	Note   NoteTheme
}

// HeaderTheme styles the title bar above the board.
type HeaderTheme struct {
	Title lipgloss.Style
	Help  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
}

// NoteTheme holds the colors of a note card. Paper and Ink are hex colors so
// each note can be tinted from its tilt.
type NoteTheme struct {
	Paper        string
	Ink          string
	Border       string
	BorderActive string
	Delete       string
	Placeholder  string
}

// Light is the default theme.
func Light() Theme {
	return Theme{
		Board: lipgloss.NewStyle().
			Background(lipgloss.Color("#c8a27a")).
			Foreground(lipgloss.Color("#8b6a4a")),
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		},
		Note: NoteTheme{
			Paper:        "#fff59d",
			Ink:          "#3e2723",
			Border:       "#c0a000",
			BorderActive: "#ff6f00",
			Delete:       "#c62828",
			Placeholder:  "#9e9d24",
		},
	}
}

// Dark is selected by the dark-mode preference.
func Dark() Theme {
	return Theme{
		Dark: true,
		Board: lipgloss.NewStyle().
			Background(lipgloss.Color("#1e1e24")).
			Foreground(lipgloss.Color("#3a3a44")),
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Note: NoteTheme{
			Paper:        "#5d4e1a",
			Ink:          "#fff8e1",
			Border:       "#8d7b2e",
			BorderActive: "#ffb300",
			Delete:       "#ef9a9a",
			Placeholder:  "#a1975e",
		},
	}
}

// For returns the theme matching the dark-mode preference.
func For(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// Apply publishes the preference to every renderer in the process, the
// terminal counterpart of a theme attribute on the document root.
func Apply(dark bool) Theme {
	lipgloss.SetHasDarkBackground(dark)
	return For(dark)
}

// Tint rotates the hue of hex by degrees in HCL space. Invalid colors are
// returned unchanged.
func Tint(hex string, degrees float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, ch, l := c.Hcl()
	return colorful.Hcl(h+degrees, ch, l).Clamped().Hex()
}

// tiltHue scales a note tilt (±3°) into a visible hue shift.
const tiltHue = 4

// NoteStyles are the per-note styles derived from the theme and a tilt.
type NoteStyles struct {
	Paper       lipgloss.Style
	Border      lipgloss.Style
	Delete      lipgloss.Style
	Placeholder lipgloss.Style
}

// ForNote derives the styles of one note. Active notes (dragging or editing)
// get the highlighted border.
func (t Theme) ForNote(tilt float64, active bool) NoteStyles {
	paper := lipgloss.Color(Tint(t.Note.Paper, tilt*tiltHue))
	base := lipgloss.NewStyle().Background(paper)

	border := t.Note.Border
	if active {
		border = t.Note.BorderActive
	}
	return NoteStyles{
		Paper:       base.Copy().Foreground(lipgloss.Color(t.Note.Ink)),
		Border:      base.Copy().Foreground(lipgloss.Color(border)).Bold(active),
		Delete:      base.Copy().Foreground(lipgloss.Color(t.Note.Delete)).Bold(true),
		Placeholder: base.Copy().Foreground(lipgloss.Color(t.Note.Placeholder)).Italic(true),
	}
}
