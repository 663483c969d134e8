package teaui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/site"
	"tableflip.dev/folio/pkg/tui/components/contact"
	"tableflip.dev/folio/pkg/tui/components/quickview"
	"tableflip.dev/folio/pkg/tui/ui/overlay"
)

const (
	heroTitle = "EVERYTHING IS URBAN"
	copyright = "© 2024. ALL RIGHTS RESERVED."

	// hero (title, quote, marquee) plus nav strip with its border.
	headerHeight = 6
	footerHeight = 1
)

var marquee = []string{"CODING", "ARCHITECTURE", "RESEARCH", "URBANIZATION", "ENTROPY", "DESIGN"}

// View renders the whole screen.
func (m *Model) View() string {
	if m.presenter.Mode() == detail.ModeFull {
		return m.reader.View()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHero(),
		m.renderNav(),
		m.renderBody(),
		m.renderFooter(),
	)

	switch {
	case m.showHelp:
		return overlay.Centered(screen, m.width, m.height, m.help.View())
	case m.mapModal != nil:
		return overlay.Centered(screen, m.width, m.height, m.mapModal.View())
	case m.presenter.Mode() == detail.ModeQuick:
		open, _ := m.presenter.Record()
		card := quickview.Render(open.Summary, min(m.width-8, 72), canRead(open), m.theme)
		return overlay.Centered(screen, m.width, m.height, card)
	}
	return screen
}

func (m *Model) renderHero() string {
	th := m.theme
	title := th.Hero.Title.Render(heroTitle)
	quote := th.Hero.Quote.Render(truncate.StringWithTail("“"+m.site.Quote()+"”", uint(max(m.width-2, 8)), "…"))
	band := th.Card.Meta.Render(truncate.String(strings.Join(marquee, " ◆ "), uint(max(m.width, 1))))
	return lipgloss.JoinVertical(lipgloss.Left, title, quote, band, "")
}

func (m *Model) renderNav() string {
	th := m.theme
	items := make([]string, 0, len(site.Sections()))
	for i, s := range site.Sections() {
		label := string(rune('1'+i)) + " " + s.String()
		if s == m.site.Section() {
			items = append(items, th.Nav.Active.Render(label))
		} else {
			items = append(items, th.Nav.Item.Render(label))
		}
	}
	return th.Nav.Bar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m *Model) renderBody() string {
	bodyHeight := max(m.height-headerHeight-footerHeight, 8)
	var body string
	if s, ok := m.sections[m.site.Section()]; ok {
		body = s.Render()
	} else {
		body = contact.Render(m.site.Links(), m.width-2, m.theme)
	}
	return lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).PaddingLeft(1).Render(body)
}

func (m *Model) renderFooter() string {
	th := m.theme
	keys := "tab section · / search · ]/[ filter · + more · enter open · t theme · ? help · q quit"
	left := th.Footer.Help.Render(truncate.String(keys, uint(max(m.width-len(copyright)-2, 0))))
	right := th.Footer.Status.Render(copyright)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
