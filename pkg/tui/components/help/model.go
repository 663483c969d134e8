// Package help is the key reference overlay.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

const (
	minWidth  = 32
	minHeight = 8
	// title row and footer row inside the frame
	chromeRows = 2
)

// Model shows the key reference rendered by glamour in the theme's modal frame.
type Model struct {
	vp     viewport.Model
	theme  theme.Theme
	width  int
	height int

	// renderedFor is the glamour style and wrap width of the content.
	renderedFor string
	err         error
}

// New sizes the overlay to width x height, clamped to a usable minimum.
func New(width, height int, th theme.Theme) *Model {
	m := &Model{vp: viewport.New(), theme: th}
	m.SetSize(width, height)
	return m
}

// Update scrolls the reference.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

// SetTheme restyles the frame and re-renders the markdown when the glamour
// style changes.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.render()
}

// SetSize resizes the overlay.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	frame := m.theme.Modal.Frame
	m.vp.SetWidth(max(width-frame.GetHorizontalFrameSize(), 1))
	m.vp.SetHeight(max(height-frame.GetVerticalFrameSize()-chromeRows, 1))
	m.render()
}

// Progress is how far the reference has been scrolled, 0 to 100.
func (m *Model) Progress() float64 {
	return detail.Progress(m.vp.YOffset, m.vp.TotalLineCount(), m.vp.Height())
}

// View draws the framed reference with a title and a scroll footer.
func (m *Model) View() string {
	inner := m.vp.Width()
	title := m.theme.Modal.Title.Render("KEYS")
	footer := m.theme.Modal.Muted.Render(fmt.Sprintf("%3.0f%%  ? or esc to close", m.Progress()))
	body := m.vp.View()
	if m.err != nil {
		body = m.theme.Modal.Disabled.Render("help unavailable: " + m.err.Error())
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.NewStyle().Width(inner).Height(m.vp.Height()).Render(body),
		footer,
	)
	return m.theme.Modal.Frame.Render(content)
}

func (m *Model) render() {
	wrap := max(m.vp.Width(), 10)
	key := fmt.Sprintf("%s/%d", m.theme.Glamour, wrap)
	if key == m.renderedFor && m.err == nil {
		return
	}
	out, err := renderMarkdown(m.theme.Glamour, wrap)
	m.err = err
	if err != nil {
		m.vp.SetContent("")
		return
	}
	m.renderedFor = key
	m.vp.SetContent(out)
	m.vp.SetYOffset(0)
}

func renderMarkdown(style string, wrap int) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(strings.TrimSpace(helpMarkdown))
}
