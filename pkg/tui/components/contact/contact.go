// Package contact renders the closing section with the social links.
package contact

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/padding"

	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/tui/theme"
)

// Render lists links under a heading.
func Render(links []content.Link, width int, th theme.Theme) string {
	lines := []string{
		th.Hero.Title.Render("LET'S BUILD"),
		th.Hero.Title.Render("SOMETHING CONCRETE."),
		"",
	}
	if len(links) == 0 {
		lines = append(lines, th.Card.Empty.Render("NO LINKS CONFIGURED"))
	}
	labelWidth := 0
	for _, l := range links {
		labelWidth = max(labelWidth, lipgloss.Width(l.Label))
	}
	for _, l := range links {
		label := padding.String(strings.ToUpper(l.Label), uint(labelWidth))
		lines = append(lines, th.Card.Kicker.Render(label)+"  "+th.Card.Body.Render(l.URL))
	}
	lines = append(lines, "", th.Card.Meta.Render("// END OF TRANSMISSION"))
	return lipgloss.NewStyle().MaxWidth(max(width, 20)).Render(strings.Join(lines, "\n"))
}
