package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowreach/pkg/render"
)

// renderCommand creates the render command: graph in, annotated drawing out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		format  string
		opts    render.Options
		noStats bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the graph with each node's reach",
		Long: `Render reads a graph, computes its report, and draws it with Graphviz.

Each node is labelled with its maximum distance and reachable count; the node
with the largest distance is highlighted and isolated nodes are dashed.
The format follows the output extension (.svg, .dot/.gv) unless --format is
set. Without --output the drawing is written to stdout.`,
		Example: `  flowreach render -i graph.txt -o graph.svg
  flowreach render --format dot < graph.txt | dot -Tpng > graph.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if format == "" {
				format = render.FormatFromPath(output)
			}

			g, err := c.readGraph(ctx)
			if err != nil {
				return err
			}
			report, err := c.compute(ctx, g)
			if err != nil {
				return err
			}
			summary := report.Summary()
			if noStats {
				report = nil
			}

			if output == "" {
				data, err := render.Render(ctx, format, g, report, opts)
				if err != nil {
					return err
				}
				_, err = c.out.Write(data)
				return err
			}

			spinner := c.spin(ctx, "Drawing graph...")
			data, err := render.Render(ctx, format, g, report, opts)
			spinner.Stop()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			c.printSuccess("Rendered %d nodes, %d edges", g.Size(), g.EdgeCount())
			c.printFile(output)
			if summary.Farthest >= 0 {
				c.printKeyValue("farthest", fmt.Sprintf("node %d (%s)", summary.Farthest, strconv.FormatUint(summary.MaxDistance, 10)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: svg or dot (default from --output, else svg)")
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "Graphviz layout engine (default neato)")
	cmd.Flags().BoolVar(&opts.HideWeights, "no-weights", false, "omit edge weight labels")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "label nodes with their index only (the status summary is still printed)")

	return cmd
}
