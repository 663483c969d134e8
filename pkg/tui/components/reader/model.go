// Package reader is the full-screen reading view of a document with a scroll
// progress bar.
package reader

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/tui/theme"
)

const maxMeasure = 70

// Model renders a detail.Document and drives a detail.Scroll.
type Model struct {
	doc    detail.Document
	scroll *detail.Scroll
	vp     viewport.Model
	theme  theme.Theme

	width  int
	height int
}

// New returns an empty reader.
func New(th theme.Theme) *Model {
	return &Model{
		vp:     viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		theme:  th,
		scroll: &detail.Scroll{},
	}
}

// Open shows doc, tracking its position in scroll.
func (m *Model) Open(doc detail.Document, scroll *detail.Scroll) {
	m.doc = doc
	m.scroll = scroll
	m.scroll.Top()
	m.layout()
}

// SetSize sets the full-screen area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// SetTheme swaps the styles and re-renders.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.layout()
}

// Update scrolls on navigation keys and reports whether the reader should close.
func (m *Model) Update(msg tea.KeyPressMsg) (closed bool) {
	page := max(m.scroll.ViewHeight()-1, 1)
	switch msg.String() {
	case "esc", "q", "backspace":
		return true
	case "down", "j":
		m.scroll.ScrollBy(1)
	case "up", "k":
		m.scroll.ScrollBy(-1)
	case "pgdown", "space", " ", "ctrl+d":
		m.scroll.ScrollBy(page)
	case "pgup", "ctrl+u":
		m.scroll.ScrollBy(-page)
	case "home", "g":
		m.scroll.Top()
	case "end", "G":
		m.scroll.Bottom()
	}
	m.vp.SetYOffset(m.scroll.Offset())
	return false
}

// Progress is the reading position as a percentage.
func (m *Model) Progress() float64 {
	return m.scroll.Progress()
}

// View renders the progress bar, the document and a footer.
func (m *Model) View() string {
	m.vp.SetYOffset(m.scroll.Offset())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.progressBar(),
		m.vp.View(),
		m.theme.Footer.Help.Render("j/k scroll · space page · g/G top/bottom · esc close"),
	)
}

func (m *Model) progressBar() string {
	width := max(m.width, 10)
	pct := m.scroll.Progress()
	label := fmt.Sprintf(" %3.0f%%", pct)
	track := max(width-len(label), 1)
	filled := int(math.Round(pct / 100 * float64(track)))
	return m.theme.Reader.Progress.Render(strings.Repeat("━", filled)) +
		m.theme.Reader.Track.Render(strings.Repeat("─", track-filled)) +
		m.theme.Reader.Meta.Render(label)
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	viewHeight := max(m.height-2, 1)
	m.vp.SetWidth(m.width)
	m.vp.SetHeight(viewHeight)

	content := m.render(min(m.width-4, maxMeasure))
	m.vp.SetContent(content)
	m.scroll.SetViewport(lipgloss.Height(content), viewHeight)
	m.vp.SetYOffset(m.scroll.Offset())
}

func (m *Model) render(measure int) string {
	th := m.theme.Reader
	measure = max(measure, 20)
	margin := strings.Repeat(" ", max((m.width-measure)/2, 0))

	var out []string
	add := func(block string) {
		for _, line := range strings.Split(block, "\n") {
			out = append(out, margin+line)
		}
	}

	if len(m.doc.Meta) > 0 {
		add(th.Meta.Render(strings.Join(m.doc.Meta, "  //  ")))
		add("")
	}
	add(th.Title.Render(wordwrap.String(strings.ToUpper(m.doc.Title), measure)))
	if len(m.doc.Tags) > 0 {
		tags := make([]string, len(m.doc.Tags))
		for i, tag := range m.doc.Tags {
			tags[i] = "#" + tag
		}
		add(th.Tag.Render(strings.Join(tags, " ")))
	}
	add("")

	paragraphs := m.doc.Paragraphs()
	initial, rest := detail.DropCap(paragraphs)
	for i, p := range paragraphs {
		if i == 0 {
			wrapped := wordwrap.String(initial+rest, measure)
			// Style the initial without changing the wrapped width.
			add(th.DropCap.Render(initial) + th.Body.Render(strings.TrimPrefix(wrapped, initial)))
		} else {
			add(th.Body.Render(wordwrap.String(p, measure)))
		}
		add("")
	}
	if m.doc.Link != "" {
		add(th.Meta.Render("SOURCE  ") + th.Tag.Render(m.doc.Link))
	}
	add(th.Meta.Render("// END OF FILE"))
	return strings.Join(out, "\n")
}
