// Package dial implements Dial's algorithm: single-source shortest paths for
// graphs whose edge costs are small positive integers.
//
// Overview:
//
//   - Edge costs lie in [1, MaxWeight]. Instead of a comparison heap, the
//     engine keeps MaxWeight+1 FIFO buckets in a ring indexed by
//     distance mod (MaxWeight+1).
//   - A logical level counter walks the ring; the first non-empty bucket at or
//     after the level always holds the smallest pending distance.
//   - Cells may be pushed several times as their distance improves ("lazy
//     deletion"). Only the first pop finalizes the cell; later pops are
//     discarded explicitly and reported through the OnDiscard hook.
//     With the default destination-weight cost every cell is first discovered
//     at its final distance, so stale entries appear only under WithEdgeCost.
//   - Within one distance, cells leave a bucket in the order they entered it,
//     so the result is fully deterministic for a fixed adjacency order.
//
// Parent slots:
//
//   - Each cell carries a tagged Parent: Unvisited, IsStart or HasParent(Index).
//     The start cell is IsStart, never its own parent.
//   - Backtrack and Result.PathTo rebuild the path and report ErrUnreachable
//     when the chain hits an Unvisited slot.
//
// Complexity:
//
//   - Time:  O(V + E + D), D = largest finite distance ≤ V·MaxWeight.
//   - Space: O(V + E).
//     Versus O((V + E) log V) for a heap-based Dijkstra.
//
// Error handling (sentinel errors):
//
//   - ErrBadMaxWeight:     WithMaxWeight(w) with w < 1.
//   - ErrSizeMismatch:     adjacency and weights differ in length.
//   - ErrStartOutOfRange:  start is not a valid cell index.
//   - ErrFinishOutOfRange: finish is not a valid cell index (Backtrack).
//   - ErrWeightOutOfRange: a relaxed edge costs 0, less, or more than MaxWeight.
//   - ErrUnreachable:      no path from start to finish.
//
// Example:
//
//	g, _ := gridgraph.From2D([][]int{{1, 1, 1}})
//	res, err := dial.ShortestPaths(g.Adjacency(), g.Weights(), 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := res.PathTo(2) // [0 1 2]
//
// Thread safety:
//
//   - A run owns all of its state; concurrent runs over the same read-only
//     adjacency are safe.
package dial
