package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/api"
)

func addServe(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	lo := &options.LogOptions{}
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the catalogs as a JSON API",
		Long: `Serve a read-only JSON API:

  GET /api/catalogs
  GET /api/catalogs/{name}?q=&facet=&expanded=
  GET /api/catalogs/{name}/facets
  GET /api/catalogs/{name}/{id}
  GET /api/gallery/{index}`,
		Example: `
folio serve
folio serve --addr :9090
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(co, lo, false)
			if err != nil {
				return err
			}
			defer e.Close()

			if addr == "" {
				addr = e.cfg.HTTPAddr
			}
			r := api.Runner{
				Service: e.service(),
				Addr:    addr,
				Log:     e.log,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API listening on http://%s/api/catalogs\n", a)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddContentArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, defaults to the http.addr config key.")

	topLevel.AddCommand(cmd)
}
