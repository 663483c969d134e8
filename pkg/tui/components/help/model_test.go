package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/folio/pkg/tui/theme"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(80, 40, theme.For(false))
	view := ansi.Strip(m.View())
	for _, want := range []string{"KEYS", "toggle dark", "esc to close"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help; view=%q", want, view)
		}
	}
	m.SetTheme(theme.For(true))
	if m.err != nil {
		t.Fatalf("unexpected render error: %v", m.err)
	}
}

func TestHelpScrollProgress(t *testing.T) {
	m := New(40, 10, theme.Default())
	if got := m.Progress(); got != 0 {
		t.Fatalf("expected 0%% at the top, got %v", got)
	}
	for i := 0; i < 200; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if got := m.Progress(); got != 100 {
		t.Fatalf("expected 100%% at the bottom, got %v", got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "100%") {
		t.Fatalf("footer does not show progress")
	}
}

func TestHelpClampsSize(t *testing.T) {
	m := New(5, 2, theme.Default())
	if m.width != minWidth || m.height != minHeight {
		t.Fatalf("expected clamped size, got %dx%d", m.width, m.height)
	}
}
