// Package quickview renders the summary overlay of a record.
package quickview

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/tui/theme"
)

// Render draws s inside a modal frame at most width cells wide. canRead adds
// the hint for switching to the full view.
func Render(s detail.Summary, width int, canRead bool, th theme.Theme) string {
	width = min(max(width, 30), 72)
	inner := width - th.Modal.Frame.GetHorizontalFrameSize()

	head := th.Card.Kicker.Render(s.Kicker)
	if s.Date != "" {
		head += th.Modal.Muted.Render("  //  " + s.Date)
	}
	parts := []string{
		head,
		"",
		th.Modal.Title.Render(wordwrap.String(strings.ToUpper(s.Title), inner)),
		"",
		th.Modal.Body.Render(wordwrap.String(s.Description, inner)),
	}
	if s.Link != "" {
		parts = append(parts, "", th.Modal.Muted.Render("LINK  ")+th.Reader.Tag.Render(s.Link))
	}

	actions := "[ESC] DISMISS"
	if canRead {
		actions = "[ENTER] READ FULL    " + actions
	}
	parts = append(parts, "", th.Footer.Help.Render(actions))

	return th.Modal.Frame.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
