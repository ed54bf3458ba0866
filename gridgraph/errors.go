package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no lines or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one line and one column")
	// ErrDimensionMismatch indicates the weights do not fill a Lines×Columns rectangle.
	ErrDimensionMismatch = errors.New("gridgraph: weights do not match grid dimensions")
	// ErrWeightOutOfRange indicates a weight outside [0, MaxWeight].
	ErrWeightOutOfRange = errors.New("gridgraph: cell weight out of range")
	// ErrBadMaxWeight indicates a MaxWeight outside [1, MaxWeightLimit].
	ErrBadMaxWeight = errors.New("gridgraph: MaxWeight out of range")
)
