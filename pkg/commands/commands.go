package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "folio",
		Short: options.Wrap80("A terminal portfolio: reads, writings, the shelf, a gallery map and the lab."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addFacets(topLevel)
	addShow(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addTiles(topLevel)
	addCheck(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
