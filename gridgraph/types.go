package gridgraph

// DefaultMaxWeight is the largest cell weight accepted unless overridden.
const DefaultMaxWeight = 9

// MaxWeightLimit caps MaxWeight; the search allocates MaxWeight+1 buckets.
const MaxWeightLimit = 1 << 16

// Impassable is the weight of a cell that cannot be entered or left.
const Impassable = 0

// Cell addresses a grid cell by its zero-based line (row) and column.
type Cell struct {
	Line, Column int
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// MaxWeight is the inclusive upper bound for cell weights.
	MaxWeight int
}

// DefaultGridOptions returns GridOptions with MaxWeight=DefaultMaxWeight.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MaxWeight: DefaultMaxWeight,
	}
}

// Grid is a Lines×Columns weight grid stored row-major. It is immutable once built.
// Cell (line, column) lives at index line*Columns + column.
type Grid struct {
	Lines, Columns int
	MaxWeight      int
	weights        []int
}

// Adjacency lists, per cell index, the passable neighbour indices of that cell.
// Impassable cells have a nil list.
type Adjacency [][]int
