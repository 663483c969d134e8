package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/content"
)

// Catalog names, in navigation order.
const (
	Reads    = "reads"
	Writings = "writings"
	Shelf    = "shelf"
	Gallery  = "gallery"
	Lab      = "lab"
)

var (
	// ErrUnknownCatalog is returned for a name outside Names.
	ErrUnknownCatalog = errors.New("catalog: unknown catalog")
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("catalog: record not found")
)

// Names lists every catalog.
func Names() []string {
	return []string{Reads, Writings, Shelf, Gallery, Lab}
}

// Title renders a catalog name for headings.
func Title(name string) string {
	return cases.Title(language.English).String(name)
}

// Spec configures a catalog over records of type T.
type Spec[T any] struct {
	Name     string
	PageSize int
	// Searchable returns the fields matched against search text.
	Searchable func(T) []string
	// FacetValues returns the values a facet can select the record by.
	FacetValues func(T) []string
	ID          func(T) string
	// Less orders the catalog. Nil keeps the configured order.
	Less     func(a, b T) bool
	Summary  func(T) detail.Summary
	Document func(T) detail.Document
}

// Order returns a sorted copy of records. The input is never modified.
func (s Spec[T]) Order(records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	if s.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return s.Less(out[i], out[j]) })
	}
	return out
}

func entryID(e content.Entry) string { return e.ID }

func entrySummary(e content.Entry) detail.Summary {
	return detail.Summary{
		ID:          e.ID,
		Kicker:      e.Category,
		Date:        e.Date,
		Title:       e.Title,
		Description: e.Description,
		Link:        e.Link,
	}
}

func entryDocument(e content.Entry) detail.Document {
	var meta []string
	if e.Category != "" {
		meta = append(meta, e.Category)
	}
	if e.Date != "" {
		meta = append(meta, e.Date)
	}
	return detail.Document{
		ID:    e.ID,
		Title: e.Title,
		Tags:  nonNil(e.Tags),
		Meta:  meta,
		Link:  e.Link,
		Body:  e.Body(),
	}
}

// ReadsSpec is the reading list: three cards per page, tags as facets.
var ReadsSpec = Spec[content.Entry]{
	Name:     Reads,
	PageSize: 3,
	Searchable: func(e content.Entry) []string {
		return []string{e.Title, e.Description}
	},
	FacetValues: func(e content.Entry) []string { return e.Tags },
	ID:          entryID,
	Summary:     entrySummary,
	Document:    entryDocument,
}

// WritingsSpec is the long-form notes catalog.
var WritingsSpec = Spec[content.Entry]{
	Name:     Writings,
	PageSize: 6,
	Searchable: func(e content.Entry) []string {
		return append([]string{e.Title, e.Category}, e.Tags...)
	},
	FacetValues: func(e content.Entry) []string { return e.Tags },
	ID:          entryID,
	Summary:     entrySummary,
	Document:    entryDocument,
}

// LabSpec lists code experiments. Both category and tags are facets.
var LabSpec = Spec[content.Entry]{
	Name:     Lab,
	PageSize: 6,
	Searchable: func(e content.Entry) []string {
		return []string{e.Title, e.Description}
	},
	FacetValues: func(e content.Entry) []string {
		return append([]string{e.Category}, e.Tags...)
	},
	ID:       entryID,
	Summary:  entrySummary,
	Document: entryDocument,
}

// ShelfSpec is the book library, newest first.
var ShelfSpec = Spec[content.Book]{
	Name:     Shelf,
	PageSize: 6,
	Searchable: func(b content.Book) []string {
		return append([]string{b.Title, b.Author}, b.Tags...)
	},
	FacetValues: func(b content.Book) []string { return b.Tags },
	ID:          func(b content.Book) string { return b.ID },
	Less: func(a, b content.Book) bool {
		return a.YearValue() > b.YearValue()
	},
	Summary: func(b content.Book) detail.Summary {
		return detail.Summary{
			ID:          b.ID,
			Kicker:      b.Author,
			Date:        b.Year,
			Title:       b.Title,
			Description: firstParagraph(b.Reflection),
		}
	},
	Document: func(b content.Book) detail.Document {
		return detail.Document{
			ID:    b.ID,
			Title: b.Title,
			Tags:  nonNil(b.Tags),
			Meta:  []string{fmt.Sprintf("%s // %s", b.Author, b.Year)},
			Body:  b.Reflection,
		}
	},
}

// GallerySpec is the photo log, faceted by location.
var GallerySpec = Spec[content.GalleryItem]{
	Name:     Gallery,
	PageSize: 4,
	Searchable: func(g content.GalleryItem) []string {
		return []string{g.Title, g.Description}
	},
	FacetValues: func(g content.GalleryItem) []string { return []string{g.Location} },
	ID:          func(g content.GalleryItem) string { return g.ID },
	Summary: func(g content.GalleryItem) detail.Summary {
		return detail.Summary{
			ID:          g.ID,
			Kicker:      g.Location,
			Date:        g.Date,
			Title:       g.Title,
			Description: g.Description,
		}
	},
	Document: func(g content.GalleryItem) detail.Document {
		return detail.Document{
			ID:    g.ID,
			Title: g.Title,
			Tags:  []string{},
			Meta:  []string{g.Location, g.Date},
			Body:  g.Description,
		}
	},
}

func firstParagraph(body string) string {
	ps := detail.Paragraphs(body)
	if len(ps) == 0 {
		return ""
	}
	return ps[0]
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
