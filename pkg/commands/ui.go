package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/runner/ui"
	"tableflip.dev/folio/pkg/site"
)

func addUI(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	lo := &options.LogOptions{}
	var (
		theme   string
		noTiles bool
	)

	validArgs := make([]string, 0, len(site.Sections()))
	for _, s := range site.Sections() {
		validArgs = append(validArgs, strings.ToLower(s.String()))
	}

	cmd := &cobra.Command{
		Use:   "ui [section]",
		Short: "open the text-based user interface",
		Example: `
folio ui
folio ui shelf
folio ui --theme light --no-tiles
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal: log to a file or not at all.
			e, err := loadEnv(co, lo, true)
			if err != nil {
				return err
			}
			defer e.Close()

			if theme != "" {
				e.cfg.Theme = strings.ToLower(theme)
			}
			if noTiles {
				e.cfg.TilesEnabled = false
			}
			if err := e.cfg.Validate(); err != nil {
				return err
			}

			i := ui.UI{Config: e.cfg, Library: e.lib, Log: e.log}
			if len(args) > 0 {
				i.Section = args[0]
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	cmd.Flags().StringVar(&theme, "theme", "",
		"Theme to start with: "+strings.Join([]string{config.ThemeAuto, config.ThemeDark, config.ThemeLight}, ", ")+".")
	cmd.Flags().BoolVar(&noTiles, "no-tiles", false,
		"Do not download map tiles.")

	topLevel.AddCommand(cmd)
}
