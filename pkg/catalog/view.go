package catalog

// View is the interactive state of one catalog screen: search text, active
// facet, expansion and the highlighted card. The facet universe is computed
// once from the full catalog and never shrinks while filtering.
type View[T any] struct {
	spec     Spec[T]
	records  []T
	facets   []string
	search   string
	facet    string
	expanded bool
	cursor   int

	filtered []T
}

// NewView orders records with spec and starts unfiltered and collapsed.
func NewView[T any](records []T, spec Spec[T]) *View[T] {
	v := &View[T]{
		spec:    spec,
		records: spec.Order(records),
		facet:   AllFacet,
	}
	v.facets = Facets(v.records, spec)
	v.refilter()
	return v
}

// Spec returns the catalog configuration.
func (v *View[T]) Spec() Spec[T] {
	return v.spec
}

// Name returns the catalog name.
func (v *View[T]) Name() string {
	return v.spec.Name
}

// Records returns the full, ordered catalog.
func (v *View[T]) Records() []T {
	return v.records
}

// Total is the size of the unfiltered catalog.
func (v *View[T]) Total() int {
	return len(v.records)
}

// Facets returns the facet chips, AllFacet first.
func (v *View[T]) Facets() []string {
	return v.facets
}

// Search returns the current search text.
func (v *View[T]) Search() string {
	return v.search
}

// SetSearch replaces the search text. Expansion is kept.
func (v *View[T]) SetSearch(search string) {
	if search == v.search {
		return
	}
	v.search = search
	v.refilter()
}

// Facet returns the selected facet.
func (v *View[T]) Facet() string {
	return v.facet
}

// SetFacet selects a facet. An empty value selects AllFacet.
func (v *View[T]) SetFacet(facet string) {
	if facet == "" {
		facet = AllFacet
	}
	if facet == v.facet {
		return
	}
	v.facet = facet
	v.refilter()
}

// CycleFacet moves the facet selection through the facet chips, wrapping at
// both ends.
func (v *View[T]) CycleFacet(delta int) {
	if len(v.facets) == 0 {
		return
	}
	idx := 0
	for i, f := range v.facets {
		if f == v.facet {
			idx = i
			break
		}
	}
	n := len(v.facets)
	idx = ((idx+delta)%n + n) % n
	v.SetFacet(v.facets[idx])
}

// Expanded reports whether the whole filtered set is shown.
func (v *View[T]) Expanded() bool {
	return v.expanded
}

// Expand shows every filtered record. There is no way back to collapsed.
func (v *View[T]) Expand() {
	v.expanded = true
}

// Filtered returns every record matching the search and facet.
func (v *View[T]) Filtered() []T {
	return v.filtered
}

// Visible returns the displayed window of the filtered set.
func (v *View[T]) Visible() []T {
	return Window(v.filtered, v.expanded, v.spec.PageSize)
}

// ShowMore reports whether the expand control is offered.
func (v *View[T]) ShowMore() bool {
	return ShowMore(len(v.records), len(v.filtered), v.spec.PageSize, v.expanded)
}

// Cursor is the index of the highlighted card within Visible.
func (v *View[T]) Cursor() int {
	return v.cursor
}

// MoveCursor moves the highlight by delta, clamped to the visible cards.
func (v *View[T]) MoveCursor(delta int) bool {
	next := clampIndex(v.cursor+delta, len(v.Visible()))
	if next == v.cursor {
		return false
	}
	v.cursor = next
	return true
}

// Selected returns the highlighted record.
func (v *View[T]) Selected() (T, bool) {
	visible := v.Visible()
	if v.cursor < 0 || v.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[v.cursor], true
}

// Find returns the record with id from the full catalog.
func (v *View[T]) Find(id string) (T, bool) {
	i := v.Index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return v.records[i], true
}

// Index returns the position of id in the full catalog or -1.
func (v *View[T]) Index(id string) int {
	if v.spec.ID == nil {
		return -1
	}
	for i, r := range v.records {
		if v.spec.ID(r) == id {
			return i
		}
	}
	return -1
}

func (v *View[T]) refilter() {
	v.filtered = Filter(v.records, v.search, v.facet, v.spec)
	v.cursor = clampIndex(v.cursor, len(v.Visible()))
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
