package gridgraph

// neighborOffsets lists (dLine, dColumn) in the order up, down, left, right.
// Search results depend on this order through FIFO tie-breaking.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the passable in-bounds neighbours of idx in the order
// up, down, left, right. An impassable cell has no neighbours.
// Complexity: O(1).
func (g *Grid) Neighbors(idx int) []int {
	if !g.Passable(idx) {
		return nil
	}
	c := g.Coordinate(idx)
	var out []int
	for _, d := range neighborOffsets {
		nl, nc := c.Line+d[0], c.Column+d[1]
		if !g.InBounds(nl, nc) {
			continue
		}
		n := nl*g.Columns + nc
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Adjacency builds the neighbour list of every cell.
// No list contains an impassable cell, and impassable cells have nil lists.
// Complexity: O(L×C) time and memory.
func (g *Grid) Adjacency() Adjacency {
	adj := make(Adjacency, g.Len())
	for idx := range adj {
		adj[idx] = g.Neighbors(idx)
	}

	return adj
}

// Edges returns the number of directed edges in adj.
func (adj Adjacency) Edges() int {
	n := 0
	for _, list := range adj {
		n += len(list)
	}

	return n
}
