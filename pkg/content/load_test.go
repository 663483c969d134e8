package content

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadReadsEveryCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		ReadsFile: {Data: []byte(`
- id: read-01
  category: NYT
  title: First
  date: "2024.12.03"
  description: one
  tags: [AI]
`)},
		LabFile: {Data: []byte(`
- id: exp-01
  category: GO
  title: Lab
  date: DEMO
  description: demo
`)},
		GalleryFile: {Data: []byte(`
- id: g1
  title: Scramble
  src: a.jpg
  location: Tokyo, JP
  coordinates: {lat: 35.6595, lng: 139.7005}
  description: crossing
  date: "2023.10.02"
`)},
		"writings/02-second.md": {Data: []byte("---\ntitle: Second\ncategory: DESIGN\n---\nbody two\n")},
		"writings/01-first.md":  {Data: []byte("---\nid: custom\ntitle: First\n---\n\nbody one\n\n")},
		"books/01-lynch.md":     {Data: []byte("---\ntitle: Image of the City\nauthor: Kevin Lynch\nyear: \"1960\"\n---\nreflection\n")},
		SiteFile:                {Data: []byte("quotes: [\"a\", \"b\"]\nlinks:\n  - label: GITHUB\n    url: https://github.com/\n")},
	}

	lib, err := Load(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lib.Reads) != 1 || lib.Reads[0].Tags[0] != "AI" {
		t.Fatalf("unexpected reads: %+v", lib.Reads)
	}
	if len(lib.Experiments) != 1 || lib.Experiments[0].Date != "DEMO" {
		t.Fatalf("unexpected lab: %+v", lib.Experiments)
	}
	if got := lib.Gallery[0].Coordinates.Lat; got != 35.6595 {
		t.Fatalf("expected lat 35.6595, got %v", got)
	}
	if len(lib.Writings) != 2 {
		t.Fatalf("expected 2 writings, got %d", len(lib.Writings))
	}
	if lib.Writings[0].ID != "custom" || lib.Writings[0].Content != "body one" {
		t.Fatalf("expected front matter id and trimmed body, got %+v", lib.Writings[0])
	}
	if lib.Writings[1].ID != "second" {
		t.Fatalf("expected id derived from file name, got %q", lib.Writings[1].ID)
	}
	book := lib.Books[0]
	if book.ID != "lynch" || book.Reflection != "reflection" || book.YearValue() != 1960 {
		t.Fatalf("unexpected book: %+v", book)
	}
	if book.Tags == nil {
		t.Fatalf("expected non-nil tags for books")
	}
	if len(lib.Quotes) != 2 || lib.Links[0].Label != "GITHUB" {
		t.Fatalf("unexpected site data: %+v %+v", lib.Quotes, lib.Links)
	}
}

func TestLoadMissingFilesAreEmpty(t *testing.T) {
	lib, err := Load(fstest.MapFS{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lib.Reads)+len(lib.Writings)+len(lib.Books)+len(lib.Gallery)+len(lib.Experiments) != 0 {
		t.Fatalf("expected empty library, got %+v", lib)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		ReadsFile: {Data: []byte("- id: r1\n  titel: typo\n")},
	}
	if _, err := Load(fsys); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		ReadsFile: {Data: []byte("- id: r1\n  title: a\n- id: r1\n  title: b\n")},
	}
	_, err := Load(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidateCoordinates(t *testing.T) {
	lib := &Library{Gallery: []GalleryItem{{ID: "g1", Coordinates: Coordinates{Lat: 91}}}}
	if err := lib.Validate(); err == nil {
		t.Fatalf("expected coordinates error")
	}
}

func TestEntryBodyFallsBackToDescription(t *testing.T) {
	e := Entry{Description: "short"}
	if e.Body() != "short" {
		t.Fatalf("expected description fallback, got %q", e.Body())
	}
	e.Content = "long"
	if e.Body() != "long" {
		t.Fatalf("expected content, got %q", e.Body())
	}
}

func TestBookYearValue(t *testing.T) {
	if got := (Book{Year: " 1978 "}).YearValue(); got != 1978 {
		t.Fatalf("expected 1978, got %d", got)
	}
	if got := (Book{Year: "n.d."}).YearValue(); got != 0 {
		t.Fatalf("expected 0 for unparseable year, got %d", got)
	}
}

func TestIDFromName(t *testing.T) {
	cases := map[string]string{
		"writings/01-brutalist-web.md": "brutalist-web",
		"books/collage-city.md":        "collage-city",
		"writings/v2-notes.md":         "v2-notes",
	}
	for in, want := range cases {
		if got := idFromName(in); got != want {
			t.Fatalf("idFromName(%q) = %q, want %q", in, got, want)
		}
	}
}
