package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/gridio"
	"github.com/katalvlaran/gridroute/internal/config"
	"github.com/katalvlaran/gridroute/route"
)

const configKey ctxKey = 1

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the configuration attached by setup, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}

	return config.Default()
}

func (c *CLI) solveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print the cheapest path, one \"line column\" pair per line, then '.'",
		Args:  cobra.NoArgs,
		RunE:  c.runSolve,
	}
}

func (c *CLI) runSolve(cmd *cobra.Command, _ []string) error {
	_, res, err := c.solve(cmd.Context())
	if err != nil {
		return err
	}

	return gridio.WritePath(c.out, res.Path)
}

// solve reads the problem and runs one query, logging details at debug level.
func (c *CLI) solve(ctx context.Context) (*gridio.Problem, *route.Result, error) {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx).With("query", uuid.NewString())
	p := newProgress(logger)

	problem, err := c.readProblem(ctx, cfg)
	if err != nil {
		logger.Debug("input rejected", "err", err, "bounds", cfg.Bounds())
		return nil, nil, err
	}
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}
	g := problem.Grid
	logger.Debug("problem read",
		"lines", g.Lines, "columns", g.Columns, "max_weight", g.MaxWeight,
		"start", problem.Query.Start, "finish", problem.Query.Finish)

	res, err := route.Solve(g, problem.Query)
	if err != nil {
		logger.Debug("search failed", "err", err)
		return problem, nil, err
	}
	p.done("path found",
		"cells", len(res.Path), "fast_path", res.FastPath,
		"pushes", res.Stats.Pushes, "discards", res.Stats.Discards,
		"finalized", res.Stats.Finalized)

	return problem, res, nil
}
