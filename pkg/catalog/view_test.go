package catalog

import (
	"testing"

	"tableflip.dev/folio/pkg/content"
)

func TestViewShelfExpandScenario(t *testing.T) {
	v := NewView(makeBooks(10, nil), ShelfSpec)
	if got := len(v.Visible()); got != 6 {
		t.Fatalf("expected 6 visible books, got %d", got)
	}
	if !v.ShowMore() {
		t.Fatalf("expected show more control")
	}
	v.Expand()
	if got := len(v.Visible()); got != 10 {
		t.Fatalf("expected 10 visible books after expand, got %d", got)
	}
	if v.ShowMore() {
		t.Fatalf("expected show more control hidden after expand")
	}
}

func TestViewShelfSortedByYearDescending(t *testing.T) {
	books := []content.Book{
		{ID: "a", Title: "A", Year: "1960"},
		{ID: "b", Title: "B", Year: "1978"},
		{ID: "c", Title: "C", Year: "1966"},
		{ID: "d", Title: "D", Year: "1978"},
		{ID: "e", Title: "E", Year: "unknown"},
	}
	v := NewView(books, ShelfSpec)
	got := ids(v.Records(), func(b content.Book) string { return b.ID })
	want := []string{"b", "d", "c", "a", "e"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if books[0].ID != "a" {
		t.Fatalf("ordering must not modify the input slice")
	}
}

func TestViewExpandedSurvivesFilterChanges(t *testing.T) {
	v := NewView(makeWritings(), WritingsSpec)
	v.Expand()
	v.SetSearch("note")
	v.SetFacet("THEORY")
	if !v.Expanded() {
		t.Fatalf("expected expanded to be preserved")
	}
	if got := len(v.Visible()); got != 9 {
		t.Fatalf("expected all 9 notes visible, got %d", got)
	}
}

func TestViewFacetsDoNotShrink(t *testing.T) {
	v := NewView(makeWritings(), WritingsSpec)
	before := len(v.Facets())
	v.SetSearch("brutal")
	if len(v.Facets()) != before {
		t.Fatalf("facet chips changed while filtering")
	}
}

func TestViewCycleFacetWraps(t *testing.T) {
	v := NewView(makeWritings(), WritingsSpec)
	v.CycleFacet(-1)
	if v.Facet() != "WEB" {
		t.Fatalf("expected wrap to last facet, got %q", v.Facet())
	}
	v.CycleFacet(1)
	if v.Facet() != AllFacet {
		t.Fatalf("expected wrap to ALL, got %q", v.Facet())
	}
	v.SetFacet("")
	if v.Facet() != AllFacet {
		t.Fatalf("expected empty facet to select ALL")
	}
}

func TestViewCursorClampsToVisible(t *testing.T) {
	v := NewView(makeWritings(), WritingsSpec)
	for i := 0; i < 10; i++ {
		v.MoveCursor(1)
	}
	if v.Cursor() != 5 {
		t.Fatalf("expected cursor on last visible card, got %d", v.Cursor())
	}
	v.SetSearch("brutal")
	if v.Cursor() != 0 {
		t.Fatalf("expected cursor clamped to single result, got %d", v.Cursor())
	}
	sel, ok := v.Selected()
	if !ok || sel.ID != "brutalist-web" {
		t.Fatalf("expected brutalist-web selected, got %+v", sel)
	}
	v.SetSearch("nothing matches")
	if _, ok := v.Selected(); ok {
		t.Fatalf("expected no selection for empty result")
	}
}

func TestViewFind(t *testing.T) {
	v := NewView(makeWritings(), WritingsSpec)
	if _, ok := v.Find("note-3"); !ok {
		t.Fatalf("expected note-3")
	}
	if i := v.Index("missing"); i != -1 {
		t.Fatalf("expected -1 for missing id, got %d", i)
	}
}
