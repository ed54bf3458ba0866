// Package gridgraph treats a rectangular grid of small integer weights as a
// graph, ready for bounded-weight shortest-path search.
//
// What:
//
//   - Grid stores Lines×Columns weights in a flattened row-major slice.
//   - Weight 0 marks an impassable cell; weights 1..MaxWeight are traversal costs.
//   - Adjacency builds, once, the list of passable orthogonal neighbours
//     of every passable cell (up, down, left, right, in that order).
//   - Regions groups passable cells into 4-connected regions.
//
// Why:
//
//   - Terrain maps: movement cost per tile, walls as zero.
//   - Routing over raster data where costs come from a small palette.
//
// Edge semantics:
//
//   - Edges exist only between passable, orthogonally adjacent cells.
//   - The cost of stepping u→v is Weight(v); the graph is symmetric in
//     structure but not in cost.
//
// Complexity:
//
//   - NewGrid:   O(L×C) time and memory.
//   - Adjacency: O(L×C) time, O(L×C) memory (≤ 4 neighbours per cell).
//   - Regions:   O(L×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:          zero lines or zero columns.
//   - ErrDimensionMismatch:  len(weights) != lines*columns, or ragged 2D input.
//   - ErrWeightOutOfRange:   a weight outside [0, MaxWeight].
//   - ErrBadMaxWeight:       MaxWeight < 1.
package gridgraph
