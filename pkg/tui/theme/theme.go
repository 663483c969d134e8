package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Hero   HeroTheme
	Nav    NavTheme
	Card   CardTheme
	Chip   ChipTheme
	Search lipgloss.Style
	Footer FooterTheme
	Modal  ModalTheme
	Reader ReaderTheme

	// Accent is the marker and highlight colour.
	Accent color.Color
	// MarkerHex is Accent in #rrggbb form for the tile renderer.
	MarkerHex string
	// Glamour is the glamour standard style matching the palette.
	Glamour string
}

// HeroTheme styles the banner and the quote.
type HeroTheme struct {
	Title lipgloss.Style
	Quote lipgloss.Style
}

// NavTheme styles the section strip.
type NavTheme struct {
	Item   lipgloss.Style
	Active lipgloss.Style
	Bar    lipgloss.Style
}

// CardTheme styles catalog cards.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Kicker   lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Meta     lipgloss.Style
	More     lipgloss.Style
	Empty    lipgloss.Style
}

// ChipTheme styles facet chips.
type ChipTheme struct {
	Item   lipgloss.Style
	Active lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles centered overlays (quick view, map, help).
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Disabled lipgloss.Style
}

// ReaderTheme styles the full reading view.
type ReaderTheme struct {
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Tag      lipgloss.Style
	DropCap  lipgloss.Style
	Body     lipgloss.Style
	Progress lipgloss.Style
	Track    lipgloss.Style
}

type palette struct {
	fg, bg, muted, faint, accent, inverse string
	glamour                               string
}

var (
	darkPalette = palette{
		fg: "#e8e6e3", bg: "#111111", muted: "#8a8a8a", faint: "#3a3a3a",
		accent: "#ff3b30", inverse: "#111111", glamour: "dark",
	}
	lightPalette = palette{
		fg: "#1a1a1a", bg: "#f2f0eb", muted: "#6b6b6b", faint: "#c8c5bd",
		accent: "#d7261e", inverse: "#f2f0eb", glamour: "light",
	}
)

// For returns the dark or light theme.
func For(dark bool) Theme {
	if dark {
		return build(darkPalette, true)
	}
	return build(lightPalette, false)
}

// Default returns the built-in dark theme.
func Default() Theme {
	return For(true)
}

func build(p palette, dark bool) Theme {
	fg := lipgloss.Color(p.fg)
	muted := lipgloss.Color(p.muted)
	faint := lipgloss.Color(p.faint)
	accent := lipgloss.Color(p.accent)
	inverse := lipgloss.Color(p.inverse)

	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(faint).
		Padding(0, 1)

	return Theme{
		Dark: dark,
		Hero: HeroTheme{
			Title: lipgloss.NewStyle().Foreground(fg).Bold(true),
			Quote: lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Nav: NavTheme{
			Item:   lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
			Active: lipgloss.NewStyle().Foreground(inverse).Background(fg).Bold(true).Padding(0, 1),
			Bar:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(faint),
		},
		Card: CardTheme{
			Frame:    card,
			Selected: card.BorderForeground(accent),
			Kicker:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Title:    lipgloss.NewStyle().Foreground(fg).Bold(true),
			Body:     lipgloss.NewStyle().Foreground(fg),
			Meta:     lipgloss.NewStyle().Foreground(muted),
			More:     lipgloss.NewStyle().Foreground(fg).Border(lipgloss.NormalBorder()).BorderForeground(fg).Padding(0, 2),
			Empty:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Chip: ChipTheme{
			Item:   lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
			Active: lipgloss.NewStyle().Foreground(inverse).Background(accent).Padding(0, 1),
		},
		Search: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(faint).Padding(0, 1),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(muted),
			Status: lipgloss.NewStyle().Foreground(accent),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(fg).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Foreground(fg).Bold(true),
			Body:     lipgloss.NewStyle().Foreground(fg),
			Muted:    lipgloss.NewStyle().Foreground(muted),
			Disabled: lipgloss.NewStyle().Foreground(faint),
		},
		Reader: ReaderTheme{
			Title:    lipgloss.NewStyle().Foreground(fg).Bold(true),
			Meta:     lipgloss.NewStyle().Foreground(muted),
			Tag:      lipgloss.NewStyle().Foreground(accent),
			DropCap:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			Body:     lipgloss.NewStyle().Foreground(fg),
			Progress: lipgloss.NewStyle().Foreground(accent),
			Track:    lipgloss.NewStyle().Foreground(faint),
		},
		Accent:    accent,
		MarkerHex: p.accent,
		Glamour:   p.glamour,
	}
}
