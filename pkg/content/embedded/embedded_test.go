package embedded

import (
	"testing"

	"tableflip.dev/folio/pkg/content"
)

func TestEmbeddedContentLoads(t *testing.T) {
	lib, err := content.Load(FS())
	if err != nil {
		t.Fatalf("load embedded content: %v", err)
	}
	if len(lib.Writings) != 10 {
		t.Fatalf("expected 10 writings, got %d", len(lib.Writings))
	}
	if len(lib.Books) != 10 {
		t.Fatalf("expected 10 books, got %d", len(lib.Books))
	}
	if len(lib.Reads) == 0 || len(lib.Experiments) == 0 || len(lib.Gallery) == 0 {
		t.Fatalf("expected every catalog to have records")
	}
	if len(lib.Quotes) == 0 {
		t.Fatalf("expected hero quotes")
	}
	for _, b := range lib.Books {
		if b.Reflection == "" {
			t.Fatalf("book %q has no reflection", b.ID)
		}
	}
}
