// Package mapmodal is the gallery map overlay: one photo at a time over the
// whole gallery, with its location drawn from map tiles.
package mapmodal

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/gallery"
	"tableflip.dev/folio/pkg/geo"
	"tableflip.dev/folio/pkg/tiles"
	"tableflip.dev/folio/pkg/tui/theme"
)

const fetchTimeout = 15 * time.Second

// Fetcher loads tile images.
type Fetcher interface {
	Fetch(ctx context.Context, t geo.Tile) ([]byte, error)
}

// TileMsg delivers a fetched tile to the mount and generation that asked for it.
type TileMsg struct {
	Mount      int
	Generation uint64
	Tile       geo.Tile
	Data       []byte
	Err        error
}

// Model is mounted when the overlay opens and must be closed with Close.
type Model struct {
	items   []content.GalleryItem
	nav     *gallery.Navigator
	mapView *gallery.MapView
	fetcher Fetcher
	theme   theme.Theme

	canvas  tiles.Canvas
	art     string
	status  string
	loading bool

	width  int
	height int
}

// New mounts a map on items[start] and returns the command fetching its tile.
// A nil fetcher draws the placeholder grid.
func New(items []content.GalleryItem, start int, mounts *gallery.Mounts, fetcher Fetcher, th theme.Theme) (*Model, tea.Cmd) {
	nav := gallery.NewNavigator(len(items), start)
	var c content.Coordinates
	if len(items) > 0 {
		c = items[nav.Index()].Coordinates
	}
	m := &Model{
		items:   items,
		nav:     nav,
		mapView: mounts.Acquire(c),
		fetcher: fetcher,
		theme:   th,
		canvas:  tiles.Canvas{Cols: 48, Rows: 14, Marker: th.MarkerHex},
	}
	return m, m.recenter()
}

// Navigator exposes the position.
func (m *Model) Navigator() *gallery.Navigator {
	return m.nav
}

// MapView exposes the mounted map.
func (m *Model) MapView() *gallery.MapView {
	return m.mapView
}

// SetSize sets the page area the overlay is centred in.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	cols := min(max(width-12, 20), 64)
	rows := min(max(height-16, 6), 18)
	if cols != m.canvas.Cols || rows != m.canvas.Rows {
		m.canvas.Cols = cols
		m.canvas.Rows = rows
	}
}

// SetTheme swaps the styles.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.canvas.Marker = th.MarkerHex
}

// Close releases the map. The model must not be used afterwards.
func (m *Model) Close() {
	m.mapView.Release()
}

// Update handles keys and tile results. closed reports an escape.
func (m *Model) Update(msg tea.Msg) (closed bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case TileMsg:
		if msg.Mount != m.mapView.ID() || !m.mapView.Current(msg.Generation) {
			return false, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.art = ""
			m.status = "TILE UNAVAILABLE"
			return false, nil
		}
		_, px := m.mapView.Tile()
		art, err := tiles.Render(msg.Data, px, m.canvas)
		if err != nil {
			m.art = ""
			m.status = "TILE UNREADABLE"
			return false, nil
		}
		m.art = art
		m.status = ""
	case tea.KeyPressMsg:
		key := msg.String()
		if n := digit(key); n > 0 {
			if m.nav.Jump(n - 1) {
				return false, m.recenter()
			}
			return false, nil
		}
		moved, esc := m.nav.HandleKey(key)
		if esc || key == "q" {
			return true, nil
		}
		if moved {
			return false, m.recenter()
		}
	}
	return false, nil
}

func digit(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '0')
	}
	return 0
}

func (m *Model) recenter() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	c := m.items[m.nav.Index()].Coordinates
	gen := m.mapView.Center(c.Lat, c.Lng)
	m.art = ""
	if m.fetcher == nil {
		m.status = "TILES DISABLED"
		m.loading = false
		return nil
	}
	m.status = "ACQUIRING SIGNAL"
	m.loading = true
	mount := m.mapView.ID()
	tile, _ := m.mapView.Tile()
	fetcher := m.fetcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		data, err := fetcher.Fetch(ctx, tile)
		return TileMsg{Mount: mount, Generation: gen, Tile: tile, Data: data, Err: err}
	}
}

// View renders the overlay body.
func (m *Model) View() string {
	th := m.theme
	if len(m.items) == 0 {
		return th.Modal.Frame.Render(th.Modal.Muted.Render("THE GALLERY IS EMPTY"))
	}
	item := m.items[m.nav.Index()]
	c := item.Coordinates

	header := th.Card.Kicker.Render(m.nav.Counter()) + "  " + th.Modal.Muted.Render(strings.ToUpper(item.ID))
	title := th.Modal.Title.Render(strings.ToUpper(item.Title))
	place := th.Modal.Muted.Render(item.Location + "  //  " + item.Date)

	art := m.art
	if art == "" {
		art = tiles.Placeholder(m.canvas, m.status)
	}

	geoloc := th.Modal.Body.Render(fmt.Sprintf("GEOLOC // %s", geo.FormatCoords(c.Lat, c.Lng, 4)))
	sat := th.Modal.Muted.Render("SATELLITE ") + th.Reader.Tag.Render(geo.SatelliteURL(c.Lat, c.Lng))
	desc := th.Modal.Body.Render(wordwrap.String(item.Description, m.canvas.Cols))

	prev := th.Footer.Help.Render("[←] PREV")
	if !m.nav.CanPrev() {
		prev = th.Modal.Disabled.Render("[←] PREV")
	}
	next := th.Footer.Help.Render("NEXT [→]")
	if !m.nav.CanNext() {
		next = th.Modal.Disabled.Render("NEXT [→]")
	}
	controls := prev + "  " + m.dots() + "  " + next + "   " + th.Footer.Help.Render("[ESC] CLOSE")

	body := lipgloss.JoinVertical(lipgloss.Left,
		header, title, place, "", art, "", geoloc, sat, "", desc, "", controls)
	return th.Modal.Frame.Render(body)
}

func (m *Model) dots() string {
	var sb strings.Builder
	for i := 0; i < m.nav.Total(); i++ {
		if i == m.nav.Index() {
			sb.WriteString(m.theme.Card.Kicker.Render("■"))
		} else {
			sb.WriteString(m.theme.Modal.Disabled.Render("□"))
		}
	}
	return sb.String()
}
