package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	lo := &options.LogOptions{}
	var (
		quick bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <catalog> <id>",
		Short: "print a record",
		Example: `
folio show shelf image-of-the-city
folio show reads read-01 --quick
folio show writings aesthetics-raw-data --json
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return options.CatalogCompletions(cmd, args, toComplete)
			}
			if len(args) == 1 {
				return recordCompletions(co, args[0]), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(co, lo, false)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := show.Show{
				Service: e.service(),
				Catalog: args[0],
				ID:      args[1],
				Quick:   quick,
				JSON:    output.JSON,
				Width:   width,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&quick, "quick", "q", false,
		"Print the quick view instead of the full document.")
	cmd.Flags().IntVarP(&width, "width", "w", show.DefaultWidth,
		"Wrap text at this many columns.")

	topLevel.AddCommand(cmd)
}

func recordCompletions(co *options.ContentOptions, name string) []string {
	cfg, err := config.Load()
	if err != nil {
		return nil
	}
	lib, err := co.Load(cfg)
	if err != nil {
		return nil
	}
	e := &env{cfg: cfg, lib: lib}
	res, err := e.service().Query(context.Background(), name, catalog.Query{Expanded: true})
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(res.Items))
	for _, it := range res.Items {
		ids = append(ids, it.ID)
	}
	return ids
}
