package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartkit/legend/internal/httpapi"
)

// defaultListenAddr is where the API server binds when no address is given.
const defaultListenAddr = ":8080"

// serveCommand creates the serve command for running the layout API server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the legend layout HTTP API",
		Long: `Run the legend layout HTTP API.

The server exposes POST /v1/layout, which accepts legend entries plus an
optional config overlay and responds with the computed layout, and
GET /healthz for liveness checks. It shuts down gracefully on SIGINT or
SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", defaultListenAddr, "listen address")

	return cmd
}

// runServe starts the API server and blocks until the context is canceled
// or the listener fails.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	srv := httpapi.New(c.Logger)

	printInfo("Serving layout API on %s", StyleHighlight.Render(addr))
	printDetail("POST /v1/layout  compute a legend layout")
	printDetail("GET  /healthz    liveness check")
	printNewline()

	err := srv.ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) {
		c.Logger.Info("server stopped")
		return err
	}
	if err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}
