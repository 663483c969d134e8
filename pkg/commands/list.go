package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	ca := &options.CatalogOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "list <catalog>",
		Short: "list one page of a catalog",
		Long: options.Wrap80("List the visible page of a catalog after search and facet filtering. " +
			"Catalogs show a fixed number of records until expanded with --all."),
		Example: `
folio list writings --search brutal
folio list lab --facet URBANISM
folio list shelf --all --json
`,
		Args:              cobra.ExactArgs(1),
		ValidArgs:         catalog.Names(),
		ValidArgsFunction: options.CatalogCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(co, lo, false)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			l := list.List{
				Service: e.service(),
				Catalog: args[0],
				Query:   ca.Query(),
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddCatalogArgs(cmd, ca)
	options.AddLogArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
