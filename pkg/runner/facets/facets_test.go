package facets

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/content/embedded"
)

func TestFacetCounts(t *testing.T) {
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	f := &Facets{Service: app.NewService(lib), Catalog: catalog.Writings}
	counts, err := f.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if len(counts) < 2 || counts[0].Facet != catalog.AllFacet {
		t.Fatalf("unexpected counts %+v", counts)
	}
	if counts[0].Count != len(lib.Writings) {
		t.Fatalf("ALL selects %d, want %d", counts[0].Count, len(lib.Writings))
	}
	for _, c := range counts[1:] {
		if c.Count == 0 {
			t.Fatalf("facet %q selects nothing", c.Facet)
		}
	}

	var buf bytes.Buffer
	f.Out = &buf
	if err := f.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !strings.Contains(buf.String(), "FACET") {
		t.Fatalf("missing header:\n%s", buf.String())
	}
}
