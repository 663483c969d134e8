package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/facets"
)

func addFacets(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "facets <catalog>",
		Short: "list the facet values of a catalog",
		Example: `
folio facets lab
folio facets gallery --json
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

			f := facets.Facets{
				Service: e.service(),
				Catalog: args[0],
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = f.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
