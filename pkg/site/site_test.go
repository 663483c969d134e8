package site

import (
	"testing"

	"tableflip.dev/folio/pkg/content"
)

func testLibrary() *content.Library {
	return &content.Library{
		Reads:  []content.Entry{{ID: "r1", Title: "One"}},
		Books:  []content.Book{{ID: "b1", Title: "Book", Year: "1960"}},
		Quotes: []string{"first", "second"},
		Links:  []content.Link{{Label: "GITHUB", URL: "https://github.com/"}},
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(testLibrary(), WithQuote(1))
	if !s.Dark() || s.ThemeName() != "dark" {
		t.Fatalf("expected dark theme by default")
	}
	if s.Section() != SectionReads {
		t.Fatalf("expected reads section, got %s", s.Section())
	}
	if s.Quote() != "second" {
		t.Fatalf("expected pinned quote, got %q", s.Quote())
	}
	if s.Reads.Total() != 1 || s.Shelf.Total() != 1 || s.Gallery.Total() != 0 {
		t.Fatalf("unexpected catalog sizes")
	}
}

func TestRandomQuoteComesFromLibrary(t *testing.T) {
	lib := testLibrary()
	for i := 0; i < 20; i++ {
		q := New(lib).Quote()
		if q != "first" && q != "second" {
			t.Fatalf("unexpected quote %q", q)
		}
	}
	if New(&content.Library{}).Quote() != "" {
		t.Fatalf("expected empty quote without quotes")
	}
}

func TestToggleTheme(t *testing.T) {
	s := New(testLibrary(), WithTheme("light"))
	if s.Dark() {
		t.Fatalf("expected light theme")
	}
	s.ToggleTheme()
	if !s.Dark() {
		t.Fatalf("expected dark after toggle")
	}
}

func TestSections(t *testing.T) {
	s := New(testLibrary())
	s.NextSection(-1)
	if s.Section() != SectionContact {
		t.Fatalf("expected wrap to contact, got %s", s.Section())
	}
	s.NextSection(1)
	if s.Section() != SectionReads {
		t.Fatalf("expected wrap to reads, got %s", s.Section())
	}
	if !s.SetSection(SectionGallery) || s.SetSection(SectionGallery) || s.SetSection(Section(42)) {
		t.Fatalf("unexpected SetSection results")
	}
	want := []string{"READS", "WRITINGS", "SHELF", "GALLERY", "LAB", "CONTACT"}
	for i, sec := range Sections() {
		if sec.String() != want[i] {
			t.Fatalf("expected %s, got %s", want[i], sec)
		}
	}
	if sec, ok := SectionFor("Shelf"); !ok || sec != SectionShelf {
		t.Fatalf("expected shelf section")
	}
	if _, ok := SectionFor("vlog"); ok {
		t.Fatalf("expected no section for vlog")
	}
}
