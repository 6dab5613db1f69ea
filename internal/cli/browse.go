package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive view of a report.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Explore a report interactively",
		Long: `Browse computes the report and shows it as a scrollable table that can be
sorted by node, maximum distance, or reachable count. Keys are read from the
terminal, so the graph may still be piped in on stdin.`,
		Example: `  flowreach browse -i graph.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.readGraph(ctx)
			if err != nil {
				return err
			}
			report, err := c.compute(ctx, g)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				NewReportModel(report, string(c.mode)),
				tea.WithContext(ctx),
				tea.WithInputTTY(),
				tea.WithOutput(c.errOut),
				tea.WithAltScreen(),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			if fm, ok := final.(ReportModel); ok {
				if node := fm.Selected(); node >= 0 {
					m := fm.Report[node]
					c.printInfo("node %d", node)
					c.printKeyValue("max", strconv.FormatUint(m.MaxDistance, 10))
					c.printKeyValue("reached", strconv.Itoa(m.Reachable))
				}
			}
			return nil
		},
	}
}
