package cli

import (
	"context"

	"github.com/matzehuels/flowreach/pkg/flow"
	"github.com/matzehuels/flowreach/pkg/graph"
	"github.com/matzehuels/flowreach/pkg/io"
)

// runReport is the root command: read, compute, print. A non-empty output
// path receives the report instead of stdout.
func (c *CLI) runReport(ctx context.Context, output string) error {
	if err := io.ValidateFormat(c.cfg.Output.Format); err != nil {
		return err
	}

	g, err := c.readGraph(ctx)
	if err != nil {
		return err
	}
	report, err := c.compute(ctx, g)
	if err != nil {
		return err
	}
	if output == "" {
		return io.Write(c.out, c.cfg.Output.Format, report)
	}
	if err := io.ExportFile(output, c.cfg.Output.Format, report); err != nil {
		return err
	}
	c.printSuccess("Wrote report for %d nodes", len(report))
	c.printFile(output)
	return nil
}

// readGraph reads the whole input before anything is computed or printed.
func (c *CLI) readGraph(ctx context.Context) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var (
		g   *graph.Graph
		err error
	)
	if c.flags.input == "" || c.flags.input == "-" {
		g, err = io.ReadText(c.in)
	} else {
		g, err = io.ImportText(c.flags.input)
	}
	if err != nil {
		return nil, err
	}

	prog.done(logger.Debug, "read graph", "nodes", g.Size(), "edges", g.EdgeCount())
	return g, nil
}

func (c *CLI) compute(ctx context.Context, g *graph.Graph) (flow.Report, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	report, err := flow.Compute(ctx, g, flow.WithMode(c.mode))
	if err != nil {
		return nil, err
	}

	s := report.Summary()
	prog.done(logger.Debug, "computed report", "mode", c.mode, "nodes", s.Nodes, "isolated", s.Isolated, "max_distance", s.MaxDistance)
	return report, nil
}
