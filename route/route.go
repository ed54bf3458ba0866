// Package route answers a single start→finish query over a weighted grid.
//
// Solve ties the pieces together:
//
//  1. Trivial query: start == finish returns the one-cell path at once,
//     whatever the cell's weight, before any graph is built.
//  2. Both cells must lie inside the grid (ErrCellOutOfGrid).
//  3. gridgraph builds the adjacency once.
//  4. dial runs the bucket-ring search with MaxWeight taken from the grid.
//  5. The parent chain is walked back from finish; ErrUnreachable if it breaks.
//
// Complexity: O(V + E + D) time, O(V + E) memory; see package dial.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/dial"
	"github.com/katalvlaran/gridroute/gridgraph"
)

var (
	// ErrNilGrid indicates Solve received a nil grid.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrCellOutOfGrid indicates a query endpoint outside the grid.
	ErrCellOutOfGrid = errors.New("route: cell outside the grid")

	// ErrUnreachable indicates no path joins start and finish.
	ErrUnreachable = dial.ErrUnreachable
)

// Query names the two endpoints of a search.
type Query struct {
	Start, Finish gridgraph.Cell
}

// Trivial reports whether start and finish coincide.
func (q Query) Trivial() bool {
	return q.Start == q.Finish
}

// Result is the answer to one Query.
type Result struct {
	Path     []gridgraph.Cell // start→finish, both included
	Cost     int64            // sum of entered cell weights; 0 on the trivial path
	FastPath bool             // true when the engine was skipped
	Stats    dial.Stats       // zero when FastPath
}

// Solve returns the cheapest path for q over g.
// opts are forwarded to dial.ShortestPaths after WithMaxWeight(g.MaxWeight).
func Solve(g *gridgraph.Grid, q Query, opts ...dial.Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if q.Trivial() {
		return &Result{Path: []gridgraph.Cell{q.Start}, FastPath: true}, nil
	}
	for _, c := range []gridgraph.Cell{q.Start, q.Finish} {
		if !g.Contains(c) {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrCellOutOfGrid, c.Line, c.Column, g.Lines, g.Columns)
		}
	}

	start, finish := g.Index(q.Start), g.Index(q.Finish)
	all := append([]dial.Option{dial.WithMaxWeight(g.MaxWeight)}, opts...)
	res, err := dial.ShortestPaths(g.Adjacency(), g.Weights(), start, all...)
	if err != nil {
		return nil, err
	}

	idx, err := res.PathTo(finish)
	if err != nil {
		return nil, err
	}
	path := make([]gridgraph.Cell, len(idx))
	for i, v := range idx {
		path[i] = g.Coordinate(v)
	}

	return &Result{
		Path:  path,
		Cost:  res.Dist[finish],
		Stats: res.Stats,
	}, nil
}
