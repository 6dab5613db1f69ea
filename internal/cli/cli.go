// Package cli implements the flowreach command-line interface.
//
// The root command reads a graph description, computes the reachability
// report for every node, and prints it. Subcommands render the graph with
// Graphviz, serve the computation over HTTP, and browse a report
// interactively. The CLI is built using cobra and logs via
// charmbracelet/log.
//
// # Commands
//
//   - flowreach: read a graph (stdin or --input) and print the report
//   - render: draw the graph annotated with its report (SVG or DOT)
//   - serve: run the HTTP API
//   - browse: explore a report in an interactive table
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Loggers are passed through context.Context. Standard output carries only
// the report, so it can be piped.
//
// # Configuration
//
// --config loads a TOML file (see internal/config). Flags given on the
// command line override values from the file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowreach/internal/config"
	"github.com/matzehuels/flowreach/pkg/buildinfo"
	"github.com/matzehuels/flowreach/pkg/flow"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg   config.Config
	mode  flow.Mode // resolved from cfg.Engine.Mode by setup
	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose bool
	config  string
	input   string
	mode    string
}

// New creates a CLI reading graphs from in, writing reports to out, and
// logging and printing status to errOut.
func New(in io.Reader, out, errOut io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(errOut, LogInfo),
		in:     in,
		out:    out,
		errOut: errOut,
		cfg:    config.Default(),
		mode:   flow.ModeFrontier,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var format, output string

	root := &cobra.Command{
		Use:   "flowreach",
		Short: "Flowreach reports how far every node of a weighted graph reaches",
		Long: `Flowreach reads an undirected weighted graph and prints, for every node, the
largest distance to any node it reaches and how many nodes it reaches.

Input (stdin unless --input is given):

  <nodeCount> <edgeCount>
  <src> <dst> <weight>     (exactly edgeCount lines)

Output, one line per node:

  node <i>: time <maxDistance>, nodes <reachableCount>`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				c.cfg.Output.Format = format
			}
			return c.runReport(cmd.Context(), output)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.config, "config", "", "path to a TOML configuration file")
	pf.StringVarP(&c.flags.input, "input", "i", "", "read the graph from a file instead of stdin")
	pf.StringVar(&c.flags.mode, "mode", "", "traversal mode: frontier or shortest (default frontier)")

	root.Flags().StringVar(&format, "format", "", "report format: text or json (default text)")
	root.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration file, applies flag overrides, and attaches
// the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.flags.config != "" {
		cfg, err := config.Load(c.flags.config)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		c.cfg.Engine.Mode = c.flags.mode
	}
	if flags.Changed("verbose") {
		c.cfg.Log.Verbose = c.flags.verbose
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	mode, err := flow.ParseMode(c.cfg.Engine.Mode)
	if err != nil {
		return err
	}
	c.mode = mode

	if c.cfg.Log.Verbose {
		c.SetLogLevel(LogDebug)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("configuration", "mode", c.mode, "format", c.cfg.Output.Format, "config", c.flags.config)
	return nil
}
