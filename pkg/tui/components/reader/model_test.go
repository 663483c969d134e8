package reader

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/tui/theme"
)

func longDocument() detail.Document {
	var paragraphs []string
	for i := 0; i < 30; i++ {
		paragraphs = append(paragraphs, "Concrete remembers every board it was cast against.")
	}
	return detail.Document{
		ID:    "raw",
		Title: "The Aesthetics of Raw Data",
		Tags:  []string{"DESIGN"},
		Meta:  []string{"THEORY", "2024.02.15"},
		Body:  strings.Join(paragraphs, "\n\n"),
	}
}

func TestReaderProgressFollowsScroll(t *testing.T) {
	m := New(theme.Default())
	m.SetSize(80, 20)
	scroll := &detail.Scroll{}
	m.Open(longDocument(), scroll)

	if m.Progress() != 0 {
		t.Fatalf("expected 0%% at top, got %v", m.Progress())
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	if m.Progress() != 100 {
		t.Fatalf("expected 100%% at bottom, got %v", m.Progress())
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if p := m.Progress(); p <= 0 || p >= 100 {
		t.Fatalf("expected partial progress, got %v", p)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "%") {
		t.Fatalf("expected progress label; view=%q", view)
	}
}

func TestReaderShortDocumentHasZeroProgress(t *testing.T) {
	m := New(theme.Default())
	m.SetSize(80, 40)
	m.Open(detail.Document{Title: "Short", Body: "One paragraph."}, &detail.Scroll{})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Progress() != 0 {
		t.Fatalf("expected 0%% for content that fits, got %v", m.Progress())
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "SHORT") || !strings.Contains(view, "One paragraph.") {
		t.Fatalf("expected title and body; view=%q", view)
	}
}

func TestReaderCloseKeys(t *testing.T) {
	m := New(theme.Default())
	m.SetSize(80, 20)
	m.Open(longDocument(), &detail.Scroll{})
	if !m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}) {
		t.Fatalf("expected esc to close")
	}
	if m.Update(tea.KeyPressMsg{Code: tea.KeyDown}) {
		t.Fatalf("expected down to scroll, not close")
	}
}
