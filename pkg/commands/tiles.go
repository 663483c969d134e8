package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/prefetch"
	"tableflip.dev/folio/pkg/tiles"
)

func addTiles(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "manage the map tile cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTilesPrefetch(cmd)

	topLevel.AddCommand(cmd)
}

func addTilesPrefetch(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	lo := &options.LogOptions{}
	var (
		style       string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "prefetch",
		Short: "download the map tile of every gallery location",
		Example: `
folio tiles prefetch
folio tiles prefetch --style both
`,
		Args:      cobra.NoArgs,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(co, lo, false)
			if err != nil {
				return err
			}
			defer e.Close()

			if !e.cfg.TilesEnabled {
				return errors.New("tile fetching is disabled, set tiles.enabled to true")
			}

			var templates []string
			switch strings.ToLower(style) {
			case "light":
				templates = []string{e.cfg.TilesURL}
			case "dark":
				templates = []string{e.cfg.TilesDarkURL}
			case "both":
				templates = []string{e.cfg.TilesURL, e.cfg.TilesDarkURL}
			default:
				return fmt.Errorf("invalid style %q (expected light, dark or both)", style)
			}

			f := tiles.NewFetcher(e.cfg.TilesURL, tiles.NewCache(e.cfg.TilesCache))
			f.Log = e.log

			p := prefetch.Prefetch{
				Gallery:     e.lib.Gallery,
				Fetcher:     f,
				Templates:   templates,
				Concurrency: concurrency,
				Log:         e.log,
				Out:         cmd.OutOrStdout(),
			}
			return p.Do(cmd.Context())
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	cmd.Flags().StringVar(&style, "style", "both", "Tile style to fetch: light, dark or both.")
	cmd.Flags().IntVar(&concurrency, "concurrency", prefetch.DefaultConcurrency, "Parallel downloads.")

	topLevel.AddCommand(cmd)
}
