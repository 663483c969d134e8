// Package teaui hosts the Bubble Tea program for the folio TUI.
package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/gallery"
	"tableflip.dev/folio/pkg/site"
	"tableflip.dev/folio/pkg/tiles"
	"tableflip.dev/folio/pkg/tui/components/catalogview"
	"tableflip.dev/folio/pkg/tui/components/help"
	"tableflip.dev/folio/pkg/tui/components/mapmodal"
	"tableflip.dev/folio/pkg/tui/components/reader"
	"tableflip.dev/folio/pkg/tui/theme"
)

// Options configures New.
type Options struct {
	Site *site.State
	// Fetcher loads map tiles. Nil disables tiles.
	Fetcher *tiles.Fetcher
	// LightTiles and DarkTiles are the tile templates per theme.
	LightTiles string
	DarkTiles  string
	Log        zerolog.Logger
}

// catalogSection is a catalogview.Model with its record type erased.
type catalogSection interface {
	Update(tea.KeyPressMsg) (catalogview.Result, tea.Cmd)
	Render() string
	SetSize(width, height int)
	SetTheme(theme.Theme)
	Searching() bool
}

// Model is the root model.
type Model struct {
	site  *site.State
	theme theme.Theme
	log   zerolog.Logger

	fetcher    *tiles.Fetcher
	lightTiles string
	darkTiles  string

	sections map[site.Section]catalogSection

	presenter detail.Presenter[catalogview.Open]
	reader    *reader.Model
	mounts    gallery.Mounts
	mapModal  *mapmodal.Model
	help      *help.Model
	showHelp  bool

	width  int
	height int
}

// New builds the UI over opts.Site.
func New(opts Options) *Model {
	th := theme.For(opts.Site.Dark())
	s := opts.Site
	m := &Model{
		site:       s,
		theme:      th,
		log:        opts.Log,
		fetcher:    opts.Fetcher,
		lightTiles: opts.LightTiles,
		darkTiles:  opts.DarkTiles,
		reader:     reader.New(th),
		width:      100,
		height:     32,
	}
	m.sections = map[site.Section]catalogSection{
		site.SectionReads: catalogview.New(s.Reads, readCard,
			catalogview.Config{Title: "LATEST READS", Enter: catalogview.OpenQuick, Space: catalogview.OpenQuick}, th),
		site.SectionWritings: catalogview.New(s.Writings, entryCard,
			catalogview.Config{Title: "WRITINGS", Enter: catalogview.OpenFull, Space: catalogview.OpenQuick}, th),
		site.SectionShelf: catalogview.New(s.Shelf, bookCard,
			catalogview.Config{Title: "THE SHELF", Enter: catalogview.OpenFull, Space: catalogview.OpenQuick}, th),
		site.SectionGallery: catalogview.New(s.Gallery, galleryCard,
			catalogview.Config{Title: "VISUAL LOG", Enter: catalogview.OpenMap, Space: catalogview.OpenQuick}, th),
		site.SectionLab: catalogview.New(s.Lab, entryCard,
			catalogview.Config{Title: "THE LAB", Enter: catalogview.OpenFull, Space: catalogview.OpenQuick}, th),
	}
	m.help = help.New(m.width-8, m.height-4, th)
	m.resize()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case mapmodal.TileMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Str("tile", msg.Tile.String()).Msg("tile fetch failed")
		}
		if m.mapModal != nil {
			_, cmd := m.mapModal.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		m.closeOverlays()
		return tea.Quit
	}

	switch {
	case m.showHelp:
		return m.handleHelpKey(msg)
	case m.mapModal != nil:
		closed, cmd := m.mapModal.Update(msg)
		if closed {
			m.closeMap()
		}
		return cmd
	case m.presenter.Mode() == detail.ModeFull:
		if m.reader.Update(msg) {
			m.log.Debug().Float64("progress", m.reader.Progress()).Msg("reader closed")
			m.presenter.Close()
		}
		return nil
	case m.presenter.Mode() == detail.ModeQuick:
		return m.handleQuickKey(key)
	}

	active, isCatalog := m.sections[m.site.Section()]
	if isCatalog && active.Searching() {
		_, cmd := active.Update(msg)
		return cmd
	}

	if key == "q" {
		m.closeOverlays()
		return tea.Quit
	}
	if m.handleGlobalKey(key) {
		return nil
	}
	if !isCatalog {
		return nil
	}
	res, cmd := active.Update(msg)
	if res.Open.Kind != catalogview.OpenNone {
		return tea.Batch(cmd, m.open(res.Open))
	}
	return cmd
}

func (m *Model) handleGlobalKey(key string) bool {
	switch key {
	case "?":
		m.showHelp = true
		return true
	case "t":
		m.site.ToggleTheme()
		m.applyTheme()
		return true
	case "tab":
		m.site.NextSection(1)
		return true
	case "shift+tab":
		m.site.NextSection(-1)
		return true
	case "1", "2", "3", "4", "5", "6":
		m.site.SetSection(site.Section(key[0] - '1'))
		return true
	}
	return false
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "?", "esc", "q":
		m.showHelp = false
		return nil
	}
	return m.help.Update(msg)
}

func (m *Model) handleQuickKey(key string) tea.Cmd {
	switch key {
	case "esc", "q", "space", " ", "backspace":
		m.presenter.Close()
	case "enter":
		open, _ := m.presenter.Record()
		if canRead(open) {
			open.Kind = catalogview.OpenFull
			m.openFull(open)
		}
	}
	return nil
}

func canRead(o catalogview.Open) bool {
	return o.Catalog != "" && o.Catalog != site.SectionGallery.Catalog() && o.Catalog != site.SectionReads.Catalog()
}

func (m *Model) open(o catalogview.Open) tea.Cmd {
	m.log.Debug().Str("catalog", o.Catalog).Str("id", o.Summary.ID).Int("kind", int(o.Kind)).Msg("open record")
	switch o.Kind {
	case catalogview.OpenQuick:
		m.presenter.Open(o, detail.ModeQuick)
	case catalogview.OpenFull:
		m.openFull(o)
	case catalogview.OpenMap:
		return m.openMap(o.Index)
	}
	return nil
}

func (m *Model) openFull(o catalogview.Open) {
	m.presenter.Open(o, detail.ModeFull)
	m.reader.SetSize(m.width, m.height)
	m.reader.Open(o.Document, m.presenter.Scroll())
}

func (m *Model) openMap(index int) tea.Cmd {
	m.closeMap()
	var fetcher mapmodal.Fetcher
	if m.fetcher != nil && !m.fetcher.Disabled {
		fetcher = m.fetcher.WithTemplate(m.tileTemplate())
	}
	modal, cmd := mapmodal.New(m.site.Gallery.Records(), index, &m.mounts, fetcher, m.theme)
	modal.SetSize(m.width, m.height)
	m.mapModal = modal
	return cmd
}

func (m *Model) closeMap() {
	if m.mapModal == nil {
		return
	}
	m.mapModal.Close()
	m.mapModal = nil
}

func (m *Model) closeOverlays() {
	m.closeMap()
	m.presenter.Close()
	m.showHelp = false
}

func (m *Model) tileTemplate() string {
	if m.site.Dark() {
		return m.darkTiles
	}
	return m.lightTiles
}

func (m *Model) applyTheme() {
	m.theme = theme.For(m.site.Dark())
	for _, s := range m.sections {
		s.SetTheme(m.theme)
	}
	m.reader.SetTheme(m.theme)
	m.help.SetTheme(m.theme)
	m.log.Debug().Str("theme", m.site.ThemeName()).Msg("theme toggled")
}

func (m *Model) resize() {
	bodyHeight := max(m.height-headerHeight-footerHeight, 8)
	for _, s := range m.sections {
		s.SetSize(m.width-2, bodyHeight)
	}
	m.reader.SetSize(m.width, m.height)
	if m.mapModal != nil {
		m.mapModal.SetSize(m.width, m.height)
	}
	m.help.SetSize(min(m.width-8, 90), m.height-4)
}

// MountedMaps is the number of live map instances.
func (m *Model) MountedMaps() int {
	return m.mounts.Live()
}

// Run starts the program in the alternate screen until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	m.closeOverlays()
	return err
}
