package content

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the per-catalog invariants: every record has an id, ids are
// unique within their catalog and gallery coordinates are in range. All
// problems are reported together.
func (l *Library) Validate() error {
	var errs []error
	errs = append(errs, checkIDs("writings", idsOf(l.Writings, func(e Entry) string { return e.ID }))...)
	errs = append(errs, checkIDs("reads", idsOf(l.Reads, func(e Entry) string { return e.ID }))...)
	errs = append(errs, checkIDs("lab", idsOf(l.Experiments, func(e Entry) string { return e.ID }))...)
	errs = append(errs, checkIDs("shelf", idsOf(l.Books, func(b Book) string { return b.ID }))...)
	errs = append(errs, checkIDs("gallery", idsOf(l.Gallery, func(g GalleryItem) string { return g.ID }))...)

	for _, g := range l.Gallery {
		if !g.Coordinates.Valid() {
			errs = append(errs, fmt.Errorf("content: gallery %q: coordinates %v out of range", g.ID, g.Coordinates))
		}
	}
	for _, b := range l.Books {
		if strings.TrimSpace(b.Title) == "" {
			errs = append(errs, fmt.Errorf("content: shelf %q: missing title", b.ID))
		}
	}
	return errors.Join(errs...)
}

func idsOf[T any](records []T, id func(T) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = id(r)
	}
	return out
}

func checkIDs(catalog string, ids []string) []error {
	var errs []error
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Errorf("content: %s record %d: missing id", catalog, i))
			continue
		}
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("content: %s: duplicate id %q (records %d and %d)", catalog, id, prev, i))
			continue
		}
		seen[id] = i
	}
	return errs
}
