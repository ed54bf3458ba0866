package gridgraph

import "fmt"

// NewGrid constructs a Grid from row-major weights.
// It copies weights to keep the Grid immutable.
// Returns ErrBadMaxWeight if opts.MaxWeight lies outside [1, MaxWeightLimit],
// ErrEmptyGrid if lines or columns is not positive, ErrDimensionMismatch if
// len(weights) != lines*columns and ErrWeightOutOfRange if any weight lies outside [0, opts.MaxWeight].
// Complexity: O(L×C) time and memory.
func NewGrid(lines, columns int, weights []int, opts GridOptions) (*Grid, error) {
	// 1) MaxWeight within [1, MaxWeightLimit]
	if opts.MaxWeight < 1 || opts.MaxWeight > MaxWeightLimit {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrBadMaxWeight, opts.MaxWeight, MaxWeightLimit)
	}
	// 2) Non-empty rectangle filled exactly by weights
	if lines <= 0 || columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(weights) != lines*columns {
		return nil, fmt.Errorf("%w: %d weights for %dx%d", ErrDimensionMismatch, len(weights), lines, columns)
	}
	// 3) Every weight within [Impassable, MaxWeight]
	for i, w := range weights {
		if w < Impassable || w > opts.MaxWeight {
			return nil, fmt.Errorf("%w: cell (%d,%d) weight=%d max=%d",
				ErrWeightOutOfRange, i/columns, i%columns, w, opts.MaxWeight)
		}
	}
	cells := make([]int, len(weights))
	copy(cells, weights)

	return &Grid{
		Lines:     lines,
		Columns:   columns,
		MaxWeight: opts.MaxWeight,
		weights:   cells,
	}, nil
}

// From2D builds a Grid from a rectangular [][]int with default options.
// Returns ErrEmptyGrid or ErrDimensionMismatch for empty or ragged input.
func From2D(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	columns := len(rows[0])
	flat := make([]int, 0, len(rows)*columns)
	for _, row := range rows {
		if len(row) != columns {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, row...)
	}

	return NewGrid(len(rows), columns, flat, DefaultGridOptions())
}

// Len returns the number of cells, Lines*Columns.
func (g *Grid) Len() int {
	return len(g.weights)
}

// InBounds reports whether (line, column) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(line, column int) bool {
	return line >= 0 && line < g.Lines && column >= 0 && column < g.Columns
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Cell) bool {
	return g.InBounds(c.Line, c.Column)
}

// Index maps a cell to its row-major index. The cell must be in bounds.
func (g *Grid) Index(c Cell) int {
	return c.Line*g.Columns + c.Column
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Line: idx / g.Columns, Column: idx % g.Columns}
}

// Weight returns the weight stored at idx.
func (g *Grid) Weight(idx int) int {
	return g.weights[idx]
}

// Passable reports whether the cell at idx can be traversed.
func (g *Grid) Passable(idx int) bool {
	return g.weights[idx] != Impassable
}

// Weights returns a copy of the row-major weights.
func (g *Grid) Weights() []int {
	out := make([]int, len(g.weights))
	copy(out, g.weights)

	return out
}
