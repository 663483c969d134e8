// Package ui starts the interactive terminal UI.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/site"
	"tableflip.dev/folio/pkg/tiles"
	teaui "tableflip.dev/folio/pkg/tui/app"
)

// UI wires configuration and content into the Bubble Tea program.
type UI struct {
	Config  *config.Config
	Library *content.Library
	// Section is the section name to start on, empty for the first.
	Section string
	Log     zerolog.Logger
}

// Options resolves everything the program needs without starting it.
func (u *UI) Options() (teaui.Options, error) {
	if u.Library == nil {
		return teaui.Options{}, errors.New("can not start ui, no content")
	}
	cfg := u.Config
	if cfg == nil {
		return teaui.Options{}, errors.New("can not start ui, no config")
	}

	opts := []site.Option{site.WithTheme(cfg.Theme)}
	if u.Section != "" {
		sec, ok := site.SectionFor(u.Section)
		switch {
		case ok:
		case strings.EqualFold(u.Section, site.SectionContact.String()):
			sec = site.SectionContact
		default:
			return teaui.Options{}, fmt.Errorf("unknown section %q", u.Section)
		}
		opts = append(opts, site.WithSection(sec))
	}
	s := site.New(u.Library, opts...)

	var fetcher *tiles.Fetcher
	if cfg.TilesEnabled {
		var cache *tiles.Cache
		if cfg.TilesCache != "" {
			cache = tiles.NewCache(cfg.TilesCache)
		}
		fetcher = tiles.NewFetcher(cfg.TileTemplate(s.Dark()), cache)
		fetcher.Log = u.Log
	}

	u.Log.Info().
		Str("theme", s.ThemeName()).
		Str("section", s.Section().String()).
		Bool("tiles", fetcher != nil).
		Msg("ui starting")

	return teaui.Options{
		Site:       s,
		Fetcher:    fetcher,
		LightTiles: cfg.TilesURL,
		DarkTiles:  cfg.TilesDarkURL,
		Log:        u.Log,
	}, nil
}

// Do runs the program until the user quits.
func (u *UI) Do(ctx context.Context) error {
	opts, err := u.Options()
	if err != nil {
		return err
	}
	return teaui.Run(ctx, opts)
}
