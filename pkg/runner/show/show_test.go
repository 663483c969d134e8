package show

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/content/embedded"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return app.NewService(lib)
}

func TestShowFull(t *testing.T) {
	var buf bytes.Buffer
	s := &Show{Service: newService(t), Catalog: catalog.Shelf, ID: "image-of-the-city", Width: 40, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "// END OF FILE") || !strings.Contains(out, "1960") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 40 && !strings.Contains(line, "http") {
			t.Fatalf("line wider than measure (%d): %q", w, line)
		}
	}
}

func TestShowQuick(t *testing.T) {
	var buf bytes.Buffer
	s := &Show{Service: newService(t), Catalog: catalog.Reads, ID: "read-01", Quick: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if strings.Contains(buf.String(), "END OF FILE") {
		t.Fatalf("quick view printed the full document:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "↗") {
		t.Fatalf("quick view of a read should show its link:\n%s", buf.String())
	}
}

func TestShowMissing(t *testing.T) {
	s := &Show{Service: newService(t), Catalog: catalog.Lab, ID: "exp-99", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
