package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/catalog"
)

// CatalogOptions captures the filter flags shared by catalog commands.
type CatalogOptions struct {
	Search string
	Facet  string
	All    bool
}

// AddCatalogArgs wires the search, facet and show-all flags.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive search text.")
	cmd.Flags().StringVarP(&o.Facet, "facet", "f", catalog.AllFacet,
		"Facet value to match exactly.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every match instead of the first page.")
}

// Query converts the flags into a catalog query.
func (o *CatalogOptions) Query() catalog.Query {
	return catalog.Query{Search: o.Search, Facet: o.Facet, Expanded: o.All}
}

// CatalogCompletions completes catalog names.
func CatalogCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}
