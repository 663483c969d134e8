// Package catalog holds the search, facet and pagination core shared by every
// portfolio catalog. A catalog is a Spec value over a record type; View keeps
// the per-screen state and Catalog erases the record type for the CLI, the
// JSON API and the MCP server.
package catalog

import (
	"sort"
	"strings"
)

// AllFacet matches every record and always leads the facet list.
const AllFacet = "ALL"

// Matches reports whether record passes both the search and the facet test.
func Matches[T any](record T, search, facet string, spec Spec[T]) bool {
	return matchesSearch(record, search, spec) && matchesFacet(record, facet, spec)
}

// Filter returns the records matching search and facet, in their original order.
func Filter[T any](records []T, search, facet string, spec Spec[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, search, facet, spec) {
			out = append(out, r)
		}
	}
	return out
}

// Facets lists the distinct facet values of records, sorted, behind AllFacet.
func Facets[T any](records []T, spec Spec[T]) []string {
	set := map[string]struct{}{}
	if spec.FacetValues != nil {
		for _, r := range records {
			for _, v := range spec.FacetValues(r) {
				if v == "" || v == AllFacet {
					continue
				}
				set[v] = struct{}{}
			}
		}
	}
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{AllFacet}, values...)
}

func matchesSearch[T any](record T, search string, spec Spec[T]) bool {
	if search == "" {
		return true
	}
	if spec.Searchable == nil {
		return false
	}
	needle := strings.ToLower(search)
	for _, field := range spec.Searchable(record) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesFacet[T any](record T, facet string, spec Spec[T]) bool {
	if facet == "" || facet == AllFacet {
		return true
	}
	if spec.FacetValues == nil {
		return false
	}
	for _, v := range spec.FacetValues(record) {
		if v == facet {
			return true
		}
	}
	return false
}
