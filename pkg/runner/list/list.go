// Package list prints one page of a catalog as a table.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
)

// List filters a catalog and prints the visible window.
type List struct {
	Service *app.Service
	Catalog string
	Query   catalog.Query
	JSON    bool
	// Out defaults to color.Output.
	Out io.Writer
}

// Do runs the query and prints it.
func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no content")
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}

	res, err := l.Service.Query(ctx, l.Catalog, l.Query)
	if err != nil {
		return err
	}
	if l.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Fprintf(out, "%s", strings.ToUpper(res.Catalog))
	_, _ = faint.Fprintf(out, "  %s\n\n", describe(res.Query))

	if len(res.Items) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(out, " no records match this filter")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("KICKER"), bold.Sprint("DATE"), bold.Sprint("TITLE"))
	for _, it := range res.Items {
		tbl.AddRow(faint.Sprint(it.ID), strings.ToUpper(it.Kicker), it.Date, it.Title)
	}
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	_, _ = faint.Fprintf(out, "%02d / %02d shown, %d matched\n", len(res.Items), res.Total, res.Matched)
	if res.ShowMore {
		_, _ = color.New(color.FgHiYellow).Fprintf(out, "[+] SHOW MORE (%d), rerun with --all\n", res.Matched-len(res.Items))
	}
	return nil
}

func describe(q catalog.Query) string {
	parts := []string{"facet " + q.Facet}
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Search))
	}
	if q.Expanded {
		parts = append(parts, "expanded")
	}
	return strings.Join(parts, ", ")
}
