// Package cli implements the gridroute command-line interface.
//
// # Commands
//
//   - gridroute / gridroute solve: read one problem, print the cheapest path
//   - gridroute render: draw the grid with the path overlaid
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; stdout carries only the
// answer. --verbose (-v) or log_level = "debug" enables per-query details.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/gridio"
	"github.com/katalvlaran/gridroute/internal/config"
)

const appName = "gridroute"

// Version is reported by --version; overridden with -ldflags at build time.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer

	flags flags
}

// flags are the persistent command-line settings.
type flags struct {
	input        string
	configPath   string
	envFile      string
	maxWeight    int
	legacyBounds bool
	verbose      bool
}

// New creates a CLI reading problems from in, writing answers to out and logs to errOut.
func New(in io.Reader, out, errOut io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(errOut, log.InfoLevel),
		in:     in,
		out:    out,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand solves a problem.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Cheapest path across a weighted grid",
		Long: `gridroute reads a grid of cell weights (0 = wall, 1-9 = cost) and two cells,
then prints the cheapest orthogonal path between them, one "line column" pair per line.`,
		Version:           Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runSolve,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.input, "input", "i", "-", "problem file ('-' for stdin)")
	pf.StringVar(&c.flags.configPath, "config", "", "TOML config file")
	pf.StringVar(&c.flags.envFile, "env-file", "", "env file to load (default .env when present)")
	pf.IntVar(&c.flags.maxWeight, "max-weight", 0, "largest accepted cell weight (default 9)")
	pf.BoolVar(&c.flags.legacyBounds, "legacy-bounds", false, "use the historical, asymmetric coordinate check")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// setup loads configuration, applies flag overrides and attaches the logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	var envFiles []string
	if c.flags.envFile != "" {
		envFiles = []string{c.flags.envFile}
	}
	cfg, err := config.Load(c.flags.configPath, envFiles...)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("max-weight") {
		cfg.MaxWeight = c.flags.maxWeight
	}
	if fs.Changed("legacy-bounds") {
		cfg.LegacyBounds = c.flags.legacyBounds
	}
	if c.flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	c.Logger.SetLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	cmd.SetContext(withConfig(cmd.Context(), cfg))

	return nil
}

// openInput returns the problem stream selected by --input.
func (c *CLI) openInput() (io.ReadCloser, error) {
	if c.flags.input == "" || c.flags.input == "-" {
		return io.NopCloser(c.in), nil
	}

	return os.Open(c.flags.input)
}

// readResult carries the outcome of a background gridio.Read.
type readResult struct {
	problem *gridio.Problem
	err     error
}

// readProblem parses the selected input under cfg.
// It returns ctx.Err() once ctx is done, even while the read is blocked.
func (c *CLI) readProblem(ctx context.Context, cfg config.Config) (*gridio.Problem, error) {
	rc, err := c.openInput()
	if err != nil {
		return nil, err
	}

	done := make(chan readResult, 1)
	go func() {
		p, err := gridio.Read(rc, cfg.ReadOptions()...)
		done <- readResult{problem: p, err: err}
	}()

	select {
	case r := <-done:
		rc.Close()
		return r.problem, r.err
	case <-ctx.Done():
		// Closing a file unblocks the reader; a blocked stdin read ends with the process.
		rc.Close()
		return nil, ctx.Err()
	}
}
