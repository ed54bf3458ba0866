package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/internal/render"
	"github.com/katalvlaran/gridroute/route"
)

func (c *CLI) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Draw the grid with the cheapest path overlaid",
		Long: `render reads the same input as solve and draws the grid: walls as '#',
the path as '*', start and finish as 'S' and 'F'. An unreachable finish still
draws the grid, then fails like solve.`,
		Args: cobra.NoArgs,
		RunE: c.runRender,
	}
}

func (c *CLI) runRender(cmd *cobra.Command, _ []string) error {
	problem, res, err := c.solve(cmd.Context())
	if problem == nil {
		return err
	}
	if err != nil && !errors.Is(err, route.ErrUnreachable) {
		return err
	}

	var path []gridgraph.Cell
	if res != nil {
		path = res.Path
	}
	if _, werr := fmt.Fprintln(c.out, render.New(c.out).Grid(problem.Grid, path)); werr != nil {
		return werr
	}

	return err
}
