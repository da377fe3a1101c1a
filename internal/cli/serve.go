package cli

import (
	"github.com/spf13/cobra"

	"github.com/wiremaphq/wiremap/internal/server"
	"github.com/wiremaphq/wiremap/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		dsn     string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wiremap HTTP API",
		Long: `Run the wiremap HTTP API.

The API exposes document CRUD under /api/documents, connection and drag
gesture editing, and rendered previews. The store DSN selects the backend:

  mem:                       in-memory (documents lost on exit)
  file:/path/to/dir          JSON files on disk (default)
  redis://host:6379/0        Redis
  mongodb://host:27017       MongoDB`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if dsn == "" {
				dsn = cfg.Store.DSN
			}

			ctx := withLogger(cmd.Context(), c.Logger)

			st, err := store.Open(ctx, dsn)
			if err != nil {
				return err
			}
			defer st.Close()

			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(st, runner, c.Logger)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")
	cmd.Flags().StringVar(&dsn, "store", "", "document store DSN (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
