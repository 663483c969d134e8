package catalog

import (
	"fmt"

	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/content"
)

// Query selects a page of a catalog.
type Query struct {
	Search   string `json:"search"`
	Facet    string `json:"facet"`
	Expanded bool   `json:"expanded"`
}

// Result is one evaluated Query.
type Result struct {
	Catalog  string           `json:"catalog"`
	Query    Query            `json:"query"`
	Total    int              `json:"total"`
	Matched  int              `json:"matched"`
	ShowMore bool             `json:"showMore"`
	Items    []detail.Summary `json:"items"`
	Records  []any            `json:"records"`
}

// Info describes a catalog without evaluating a query.
type Info struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Total    int    `json:"total"`
	PageSize int    `json:"pageSize"`
}

// Catalog is a read-only catalog with its record type erased. Every call
// works on a fresh View, so a Catalog is safe for concurrent use.
type Catalog interface {
	Info() Info
	Facets() []string
	Query(q Query) Result
	Summary(id string) (detail.Summary, error)
	Document(id string) (detail.Document, error)
	Record(id string) (any, error)
}

type erased[T any] struct {
	spec    Spec[T]
	records []T
	facets  []string
}

// Erase wraps records and their spec as a Catalog.
func Erase[T any](records []T, spec Spec[T]) Catalog {
	ordered := spec.Order(records)
	return &erased[T]{
		spec:    spec,
		records: ordered,
		facets:  Facets(ordered, spec),
	}
}

func (c *erased[T]) Info() Info {
	return Info{
		Name:     c.spec.Name,
		Title:    Title(c.spec.Name),
		Total:    len(c.records),
		PageSize: c.spec.PageSize,
	}
}

func (c *erased[T]) Facets() []string {
	out := make([]string, len(c.facets))
	copy(out, c.facets)
	return out
}

func (c *erased[T]) Query(q Query) Result {
	v := NewView(c.records, c.spec)
	v.SetSearch(q.Search)
	v.SetFacet(q.Facet)
	if q.Expanded {
		v.Expand()
	}
	visible := v.Visible()
	res := Result{
		Catalog:  c.spec.Name,
		Query:    Query{Search: v.Search(), Facet: v.Facet(), Expanded: v.Expanded()},
		Total:    v.Total(),
		Matched:  len(v.Filtered()),
		ShowMore: v.ShowMore(),
		Items:    make([]detail.Summary, 0, len(visible)),
		Records:  make([]any, 0, len(visible)),
	}
	for _, r := range visible {
		res.Items = append(res.Items, c.spec.Summary(r))
		res.Records = append(res.Records, r)
	}
	return res
}

func (c *erased[T]) find(id string) (T, error) {
	for _, r := range c.records {
		if c.spec.ID(r) == id {
			return r, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s/%s", ErrNotFound, c.spec.Name, id)
}

func (c *erased[T]) Summary(id string) (detail.Summary, error) {
	r, err := c.find(id)
	if err != nil {
		return detail.Summary{}, err
	}
	return c.spec.Summary(r), nil
}

func (c *erased[T]) Document(id string) (detail.Document, error) {
	r, err := c.find(id)
	if err != nil {
		return detail.Document{}, err
	}
	return c.spec.Document(r), nil
}

func (c *erased[T]) Record(id string) (any, error) {
	r, err := c.find(id)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Set is every catalog of a library, addressable by name.
type Set struct {
	byName map[string]Catalog
}

// NewSet builds the five catalogs over lib.
func NewSet(lib *content.Library) *Set {
	return &Set{byName: map[string]Catalog{
		Reads:    Erase(lib.Reads, ReadsSpec),
		Writings: Erase(lib.Writings, WritingsSpec),
		Shelf:    Erase(lib.Books, ShelfSpec),
		Gallery:  Erase(lib.Gallery, GallerySpec),
		Lab:      Erase(lib.Experiments, LabSpec),
	}}
}

// Lookup returns the catalog called name, ignoring case and surrounding space.
func (s *Set) Lookup(name string) (Catalog, error) {
	c, ok := s.byName[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
	}
	return c, nil
}

// Infos describes every catalog in navigation order.
func (s *Set) Infos() []Info {
	out := make([]Info, 0, len(s.byName))
	for _, name := range Names() {
		out = append(out, s.byName[name].Info())
	}
	return out
}
