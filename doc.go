// Package gridroute finds cheapest routes across small-weight grids.
//
// A grid is a rectangle of cells carrying integer weights 0..MaxWeight
// (9 by default). Weight 0 marks a wall. Stepping onto a cell costs that
// cell's weight, so the start cell never contributes to the total.
//
// Because weights are bounded, the search uses Dial's algorithm: a ring of
// MaxWeight+1 FIFO buckets replaces the binary heap, and the whole run is
// linear in the number of cells.
//
// Layout:
//
//	gridgraph/        grid model, 4-neighbour adjacency, passable regions
//	dial/             bucket-queue shortest paths with tagged parent slots
//	route/            one start/finish query on a Grid, with the trivial fast path
//	gridio/           textual problem reader and path writer
//	internal/config/  TOML, .env and GRIDROUTE_* settings
//	internal/render/  lipgloss drawing of a grid and its route
//	internal/cli/     cobra commands: solve (default) and render
//	cmd/gridroute/    the executable
//
// Quick start:
//
//	g, _ := gridgraph.From2D([][]int{{1, 9}, {9, 1}})
//	res, err := route.Solve(g, route.Query{
//		Start:  gridgraph.Cell{Line: 0, Column: 0},
//		Finish: gridgraph.Cell{Line: 1, Column: 1},
//	})
//	// res.Path: (0,0) (1,0) (1,1), res.Cost: 10
package gridroute
