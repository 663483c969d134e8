package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/logging"
	"tableflip.dev/folio/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	lo := &options.LogOptions{}
	var watch bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "validate a content tree",
		Long: options.Wrap80("Load and validate content: unique ids per catalog, " +
			"gallery coordinates in range, books with titles. " +
			"Without a directory the configured or built-in content is checked."),
		Example: `
folio check
folio check ./content --watch
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, closer, err := logging.New(lo.Logging(cfg))
			if err != nil {
				return err
			}
			defer closer.Close()

			if len(args) > 0 {
				co.Dir = args[0]
			}
			fsys, dir := co.FS(cfg)
			c := check.Check{
				FS:    fsys,
				Dir:   dir,
				Watch: watch,
				Log:   log,
				Out:   cmd.OutOrStdout(),
			}
			return c.Do(cmd.Context())
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and validate again whenever a file changes.")

	topLevel.AddCommand(cmd)
}
