// Package facets prints the facet values of a catalog with their counts.
package facets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
)

// Facets lists the facet strip of a catalog.
type Facets struct {
	Service *app.Service
	Catalog string
	JSON    bool
	Out     io.Writer
}

// Count is one facet value and how many records it selects.
type Count struct {
	Facet string `json:"facet"`
	Count int    `json:"count"`
}

// Counts evaluates every facet of the catalog.
func (f *Facets) Counts(ctx context.Context) ([]Count, error) {
	if f.Service == nil {
		return nil, errors.New("can not list facets, no content")
	}
	values, err := f.Service.Facets(ctx, f.Catalog)
	if err != nil {
		return nil, err
	}
	out := make([]Count, 0, len(values))
	for _, v := range values {
		res, err := f.Service.Query(ctx, f.Catalog, catalog.Query{Facet: v})
		if err != nil {
			return nil, err
		}
		out = append(out, Count{Facet: v, Count: res.Matched})
	}
	return out, nil
}

// Do prints the counts.
func (f *Facets) Do(ctx context.Context) error {
	counts, err := f.Counts(ctx)
	if err != nil {
		return err
	}
	out := f.Out
	if out == nil {
		out = color.Output
	}
	if f.JSON {
		return json.NewEncoder(out).Encode(counts)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("FACET"), bold.Sprint("RECORDS"))
	for _, c := range counts {
		tbl.AddRow(c.Facet, c.Count)
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
