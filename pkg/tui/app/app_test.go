package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/content/embedded"
	"tableflip.dev/folio/pkg/site"
)

func newTestModel(t *testing.T, opts ...site.Option) *Model {
	t.Helper()
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	opts = append([]site.Option{site.WithQuote(0)}, opts...)
	m := New(Options{Site: site.New(lib, opts...), Log: zerolog.Nop()})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	spaceKey = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	tabKey   = tea.KeyPressMsg{Code: tea.KeyTab}
)

func TestSectionNavigation(t *testing.T) {
	m := newTestModel(t)
	if got := m.site.Section(); got != site.SectionReads {
		t.Fatalf("initial section = %v, want READS", got)
	}
	press(m, tabKey, tabKey)
	if got := m.site.Section(); got != site.SectionShelf {
		t.Fatalf("after two tabs = %v, want SHELF", got)
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := m.site.Section(); got != site.SectionWritings {
		t.Fatalf("after shift+tab = %v, want WRITINGS", got)
	}
	press(m, runeKey('6'))
	if got := m.site.Section(); got != site.SectionContact {
		t.Fatalf("after 6 = %v, want CONTACT", got)
	}
	press(m, tabKey)
	if got := m.site.Section(); got != site.SectionReads {
		t.Fatalf("tab from CONTACT = %v, want READS", got)
	}
}

func TestFullReaderOpensAndCloses(t *testing.T) {
	m := newTestModel(t, site.WithSection(site.SectionWritings))
	press(m, enterKey)
	if got := m.presenter.Mode(); got != detail.ModeFull {
		t.Fatalf("mode after enter = %v, want full", got)
	}
	open, _ := m.presenter.Record()
	if open.Catalog != catalog.Writings || open.Document.Title == "" {
		t.Fatalf("unexpected open record %+v", open)
	}
	if m.presenter.Progress() != 0 {
		t.Fatalf("progress on open = %v, want 0", m.presenter.Progress())
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "END OF FILE") {
		t.Fatalf("reader view missing end marker:\n%s", view)
	}
	press(m, escKey)
	if m.presenter.IsOpen() {
		t.Fatalf("presenter still open after esc")
	}
}

func TestQuickViewPromotesToFull(t *testing.T) {
	m := newTestModel(t, site.WithSection(site.SectionShelf))
	press(m, spaceKey)
	if got := m.presenter.Mode(); got != detail.ModeQuick {
		t.Fatalf("mode after space = %v, want quick", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "READ FULL") {
		t.Fatalf("quick view missing read action:\n%s", view)
	}
	press(m, enterKey)
	if got := m.presenter.Mode(); got != detail.ModeFull {
		t.Fatalf("mode after enter = %v, want full", got)
	}
}

func TestReadsOnlyOpenQuick(t *testing.T) {
	m := newTestModel(t)
	press(m, enterKey)
	if got := m.presenter.Mode(); got != detail.ModeQuick {
		t.Fatalf("mode after enter on reads = %v, want quick", got)
	}
	press(m, enterKey)
	if got := m.presenter.Mode(); got != detail.ModeQuick {
		t.Fatalf("reads promoted to %v, want quick", got)
	}
	press(m, escKey)
	if m.presenter.IsOpen() {
		t.Fatalf("presenter still open after esc")
	}
}

func TestGalleryMapMountsOnce(t *testing.T) {
	m := newTestModel(t, site.WithSection(site.SectionGallery))
	press(m, runeKey('l'), enterKey)
	if m.mapModal == nil {
		t.Fatalf("map modal not open")
	}
	if got := m.MountedMaps(); got != 1 {
		t.Fatalf("mounted maps = %d, want 1", got)
	}
	if got := m.mapModal.Navigator().Index(); got != 1 {
		t.Fatalf("map opened at %d, want 1", got)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "TILES DISABLED") {
		t.Fatalf("expected disabled tiles placeholder:\n%s", view)
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	if got := m.mapModal.Navigator().Index(); got != 2 {
		t.Fatalf("index after right = %d, want 2", got)
	}
	if got := m.MountedMaps(); got != 1 {
		t.Fatalf("mounted maps after navigation = %d, want 1", got)
	}
	press(m, escKey)
	if m.mapModal != nil || m.MountedMaps() != 0 {
		t.Fatalf("map not released: modal=%v live=%d", m.mapModal != nil, m.MountedMaps())
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	if !m.theme.Dark {
		t.Fatalf("default theme should be dark")
	}
	press(m, runeKey('t'))
	if m.theme.Dark || m.site.ThemeName() != "light" {
		t.Fatalf("theme not toggled to light")
	}
	press(m, runeKey('t'))
	if !m.theme.Dark {
		t.Fatalf("theme not toggled back to dark")
	}
}

func TestSearchCapturesGlobalKeys(t *testing.T) {
	m := newTestModel(t, site.WithSection(site.SectionWritings))
	press(m, runeKey('/'), runeKey('q'), runeKey('t'))
	if !m.theme.Dark {
		t.Fatalf("t toggled the theme while searching")
	}
	press(m, escKey)
	if got := m.site.Writings.Search(); got != "qt" {
		t.Fatalf("search = %q, want %q", got, "qt")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('?'))
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	press(m, tabKey)
	if m.site.Section() != site.SectionReads {
		t.Fatalf("tab leaked through the help overlay")
	}
	press(m, escKey)
	if m.showHelp {
		t.Fatalf("help still shown after esc")
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{heroTitle, "URBANIZATION", "1 READS", "6 CONTACT", "LATEST READS", copyright} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	press(m, runeKey('6'))
	view = ansi.Strip(m.View())
	if !strings.Contains(view, "GITHUB") {
		t.Fatalf("contact section missing links:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, runeKey('q'))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}
