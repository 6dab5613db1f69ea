package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowreach/internal/config"
	"github.com/matzehuels/flowreach/internal/server"
	"github.com/matzehuels/flowreach/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		limits config.Server
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		Long: `Serve starts an HTTP server exposing:

  POST /v1/report   graph text in the body; JSON report out (?format=text, ?mode=shortest)
  GET  /healthz     liveness probe
  GET  /metrics     Prometheus metrics

Graphs above --max-nodes or --max-edges, and reports whose traversals
enqueue more than --frontier-limit items, are rejected with 413; reports
running past --timeout get 503.`,
		Example: `  flowreach serve --addr :9090
  curl --data-binary @graph.txt localhost:9090/v1/report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("addr") {
				c.cfg.Server.Addr = addr
			}
			if flags.Changed("max-nodes") {
				c.cfg.Server.MaxNodes = limits.MaxNodes
			}
			if flags.Changed("max-edges") {
				c.cfg.Server.MaxEdges = limits.MaxEdges
			}
			if flags.Changed("frontier-limit") {
				c.cfg.Server.FrontierLimit = limits.FrontierLimit
			}
			if flags.Changed("timeout") {
				c.cfg.Server.Timeout = limits.Timeout
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			srv := server.New(c.Logger, server.Options{
				Mode:          c.mode,
				MaxNodes:      c.cfg.Server.MaxNodes,
				MaxEdges:      c.cfg.Server.MaxEdges,
				FrontierLimit: c.cfg.Server.FrontierLimit,
				Timeout:       c.cfg.Server.Timeout,
			})
			observability.SetEngineHooks(srv.Metrics())
			observability.SetHTTPHooks(srv.Metrics())

			return srv.ListenAndServe(cmd.Context(), c.cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+c.cfg.Server.Addr+")")
	cmd.Flags().IntVar(&limits.MaxNodes, "max-nodes", 0, fmt.Sprintf("largest accepted node count (default %d)", server.DefaultMaxNodes))
	cmd.Flags().IntVar(&limits.MaxEdges, "max-edges", 0, fmt.Sprintf("largest accepted edge count (default %d)", server.DefaultMaxEdges))
	cmd.Flags().IntVar(&limits.FrontierLimit, "frontier-limit", 0, fmt.Sprintf("items one traversal may enqueue (default %d)", server.DefaultFrontierLimit))
	cmd.Flags().DurationVar(&limits.Timeout, "timeout", 0, fmt.Sprintf("time limit per report (default %s)", server.DefaultTimeout))
	return cmd
}
