// Package prefetch warms the map tile cache for every gallery location.
package prefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/geo"
	"tableflip.dev/folio/pkg/tiles"
)

// DefaultConcurrency bounds parallel downloads.
const DefaultConcurrency = 4

// Prefetch downloads the centre tile of each gallery item for each template.
type Prefetch struct {
	Gallery   []content.GalleryItem
	Fetcher   *tiles.Fetcher
	Templates []string
	// Concurrency defaults to DefaultConcurrency.
	Concurrency int
	Log         zerolog.Logger
	Out         io.Writer
}

// Outcome is the result for one gallery item and template.
type Outcome struct {
	ID    string
	Style string
	Tile  geo.Tile
	Bytes int
	Err   error
}

// Run fetches everything and returns one outcome per item and template, in
// gallery order. It fails only when ctx is cancelled.
func (p *Prefetch) Run(ctx context.Context) ([]Outcome, error) {
	if p.Fetcher == nil {
		return nil, errors.New("can not prefetch, no tile fetcher")
	}
	if p.Fetcher.Disabled {
		return nil, tiles.ErrDisabled
	}
	templates := p.Templates
	if len(templates) == 0 {
		templates = []string{p.Fetcher.Template}
	}
	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(p.Gallery)*len(templates))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for ti, tmpl := range templates {
		f := p.Fetcher.WithTemplate(tmpl)
		for gi, item := range p.Gallery {
			slot := ti*len(p.Gallery) + gi
			c := item.Coordinates
			tile, _ := geo.Project(c.Lat, c.Lng, geo.DefaultZoom)
			g.Go(func() error {
				data, err := f.Fetch(gctx, tile)
				if err != nil && gctx.Err() != nil {
					return gctx.Err()
				}
				if err != nil {
					p.Log.Warn().Err(err).Str("id", item.ID).Str("tile", tile.String()).Msg("prefetch failed")
				}
				mu.Lock()
				outcomes[slot] = Outcome{ID: item.ID, Style: f.Style(), Tile: tile, Bytes: len(data), Err: err}
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Do runs the prefetch and prints a table of outcomes.
func (p *Prefetch) Do(ctx context.Context) error {
	outcomes, err := p.Run(ctx)
	if err != nil {
		return err
	}
	out := p.Out
	if out == nil {
		out = color.Output
	}

	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("STYLE"), bold.Sprint("TILE"), bold.Sprint("STATUS"))
	failed := 0
	for _, o := range outcomes {
		status := ok.Sprintf("%d bytes", o.Bytes)
		if o.Err != nil {
			failed++
			status = bad.Sprint(o.Err.Error())
		}
		tbl.AddRow(o.ID, o.Style, o.Tile.String(), status)
	}
	_, _ = fmt.Fprintln(out, tbl)
	if failed > 0 {
		return fmt.Errorf("%d of %d tiles failed", failed, len(outcomes))
	}
	return nil
}
