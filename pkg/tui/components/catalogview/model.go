// Package catalogview renders one catalog.View as a searchable, faceted card
// grid with a show-more control.
package catalogview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/tui/theme"
)

// Kind is what opening a card asks the app to show.
type Kind int

const (
	OpenNone Kind = iota
	OpenQuick
	OpenFull
	OpenMap
)

// Open is a request to present a record.
type Open struct {
	Kind     Kind
	Catalog  string
	Summary  detail.Summary
	Document detail.Document
	// Index is the record's position in the full catalog.
	Index int
}

// Card is the display form of a record.
type Card struct {
	Kicker string
	Date   string
	Title  string
	Body   string
	Meta   string
}

// Config selects what enter and space do on a card.
type Config struct {
	Title string
	// Enter is the presentation opened by enter.
	Enter Kind
	// Space is the presentation opened by space, OpenNone to disable.
	Space Kind
}

// Result reports how a key press was handled.
type Result struct {
	Handled bool
	Open    Open
}

const (
	cardBodyLines = 3
	minCardWidth  = 28
	maxColumns    = 3
)

// Model is the Bubble Tea component for one catalog.
type Model[T any] struct {
	view   *catalog.View[T]
	card   func(T) Card
	config Config
	theme  theme.Theme

	input     textinput.Model
	searching bool

	width  int
	height int
	offset int
}

// New builds the component over view.
func New[T any](view *catalog.View[T], card func(T) Card, config Config, th theme.Theme) *Model[T] {
	ti := textinput.New()
	ti.Placeholder = "SEARCH"
	ti.CharLimit = 64
	ti.Prompt = "⌕ "
	if config.Title == "" {
		config.Title = strings.ToUpper(view.Name())
	}
	return &Model[T]{
		view:   view,
		card:   card,
		config: config,
		theme:  th,
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Catalog exposes the underlying catalog state.
func (m *Model[T]) Catalog() *catalog.View[T] {
	return m.view
}

// Searching reports whether the search box has focus.
func (m *Model[T]) Searching() bool {
	return m.searching
}

// SetSize sets the area available to the component.
func (m *Model[T]) SetSize(width, height int) {
	m.width = max(width, minCardWidth)
	m.height = max(height, 8)
	m.input.SetWidth(max(m.width/2, 16))
}

// SetTheme swaps the styles.
func (m *Model[T]) SetTheme(th theme.Theme) {
	m.theme = th
}

// Update handles a key press.
func (m *Model[T]) Update(msg tea.KeyPressMsg) (Result, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	switch msg.String() {
	case "/":
		m.searching = true
		return Result{Handled: true}, m.input.Focus()
	case "up", "k":
		m.view.MoveCursor(-m.columns())
	case "down", "j":
		m.view.MoveCursor(m.columns())
	case "left", "h":
		m.view.MoveCursor(-1)
	case "right", "l":
		m.view.MoveCursor(1)
	case "]", "f":
		m.view.CycleFacet(1)
	case "[", "F":
		m.view.CycleFacet(-1)
	case "+", "m":
		if !m.view.ShowMore() {
			return Result{}, nil
		}
		m.view.Expand()
	case "x":
		if m.view.Search() == "" && m.view.Facet() == catalog.AllFacet {
			return Result{}, nil
		}
		m.input.SetValue("")
		m.view.SetSearch("")
		m.view.SetFacet(catalog.AllFacet)
	case "enter":
		return m.open(m.config.Enter), nil
	case "space", " ":
		return m.open(m.config.Space), nil
	default:
		return Result{}, nil
	}
	return Result{Handled: true}, nil
}

func (m *Model[T]) updateSearch(msg tea.KeyPressMsg) (Result, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "down", "tab":
		m.searching = false
		m.input.Blur()
		return Result{Handled: true}, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.view.SetSearch(m.input.Value())
	return Result{Handled: true}, cmd
}

func (m *Model[T]) open(kind Kind) Result {
	if kind == OpenNone {
		return Result{}
	}
	rec, ok := m.view.Selected()
	if !ok {
		return Result{Handled: true}
	}
	spec := m.view.Spec()
	return Result{Handled: true, Open: Open{
		Kind:     kind,
		Catalog:  spec.Name,
		Summary:  spec.Summary(rec),
		Document: spec.Document(rec),
		Index:    m.view.Index(spec.ID(rec)),
	}}
}

func (m *Model[T]) columns() int {
	cols := m.width / (minCardWidth + 8)
	return min(max(cols, 1), maxColumns)
}

// Render draws the component into width x height.
func (m *Model[T]) Render() string {
	header := m.renderHeader()
	body, selTop, selBottom := m.renderGrid()
	footer := m.renderFooter()

	headerLines := strings.Split(header, "\n")
	footerLines := strings.Split(footer, "\n")
	room := max(m.height-len(headerLines)-len(footerLines), 1)

	bodyLines := strings.Split(body, "\n")
	if selTop < m.offset {
		m.offset = selTop
	}
	if selBottom >= m.offset+room {
		m.offset = selBottom - room + 1
	}
	m.offset = min(max(m.offset, 0), max(len(bodyLines)-room, 0))
	end := min(m.offset+room, len(bodyLines))
	visible := bodyLines[m.offset:end]

	lines := append([]string{}, headerLines...)
	lines = append(lines, visible...)
	lines = append(lines, footerLines...)
	return strings.Join(lines, "\n")
}

func (m *Model[T]) renderHeader() string {
	th := m.theme
	count := fmt.Sprintf("%02d / %02d", len(m.view.Filtered()), m.view.Total())
	title := th.Hero.Title.Render(m.config.Title) + "  " + th.Card.Meta.Render(count)

	search := m.input.View()
	if !m.searching && m.view.Search() == "" {
		search = th.Card.Meta.Render("⌕ SEARCH  (/)")
	}
	searchBox := th.Search.Width(max(m.width/2, 20)).Render(search)

	var chips []string
	for _, f := range m.view.Facets() {
		if f == m.view.Facet() {
			chips = append(chips, th.Chip.Active.Render(f))
			continue
		}
		chips = append(chips, th.Chip.Item.Render(f))
	}
	chipLine := wordwrap.String(strings.Join(chips, " "), m.width)

	return lipgloss.JoinVertical(lipgloss.Left, title, searchBox, chipLine, "")
}

func (m *Model[T]) renderGrid() (string, int, int) {
	visible := m.view.Visible()
	if len(visible) == 0 {
		return m.theme.Card.Empty.Render("NO RECORDS MATCH THIS FILTER"), 0, 0
	}
	cols := m.columns()
	gap := 1
	cardWidth := (m.width - gap*(cols-1)) / cols

	var rows []string
	selTop, selBottom, line := 0, 0, 0
	for start := 0; start < len(visible); start += cols {
		end := min(start+cols, len(visible))
		var cells []string
		selectedRow := false
		for i := start; i < end; i++ {
			selected := i == m.view.Cursor()
			selectedRow = selectedRow || selected
			cells = append(cells, m.renderCard(m.card(visible[i]), cardWidth, selected))
			if i < end-1 {
				cells = append(cells, strings.Repeat(" ", gap))
			}
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		h := lipgloss.Height(row)
		if selectedRow {
			selTop, selBottom = line, line+h-1
		}
		rows = append(rows, row)
		line += h
	}
	return strings.Join(rows, "\n"), selTop, selBottom
}

func (m *Model[T]) renderCard(c Card, width int, selected bool) string {
	th := m.theme
	frame := th.Card.Frame
	if selected {
		frame = th.Card.Selected
	}
	inner := max(width-frame.GetHorizontalFrameSize(), 8)

	kicker := th.Card.Kicker.Render(truncate.StringWithTail(c.Kicker, uint(inner/2), "…"))
	date := th.Card.Meta.Render(c.Date)
	pad := max(inner-lipgloss.Width(kicker)-lipgloss.Width(date), 1)
	top := kicker + strings.Repeat(" ", pad) + date

	title := th.Card.Title.Render(truncate.StringWithTail(c.Title, uint(inner), "…"))

	bodyLines := strings.Split(wordwrap.String(c.Body, inner), "\n")
	if len(bodyLines) > cardBodyLines {
		bodyLines = bodyLines[:cardBodyLines]
		bodyLines[cardBodyLines-1] = truncate.StringWithTail(bodyLines[cardBodyLines-1], uint(inner-1), "") + "…"
	}
	for len(bodyLines) < cardBodyLines {
		bodyLines = append(bodyLines, "")
	}
	for i, l := range bodyLines {
		bodyLines[i] = truncate.String(l, uint(inner))
	}
	body := th.Card.Body.Render(strings.Join(bodyLines, "\n"))
	meta := th.Card.Meta.Render(truncate.StringWithTail(c.Meta, uint(inner), "…"))

	return frame.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, top, title, body, meta))
}

func (m *Model[T]) renderFooter() string {
	if !m.view.ShowMore() {
		return ""
	}
	hidden := len(m.view.Filtered()) - len(m.view.Visible())
	return m.theme.Card.More.Render(fmt.Sprintf("[+] SHOW MORE (%d)", hidden))
}
