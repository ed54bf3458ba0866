package gridgraph

// Regions finds all 4-connected regions of passable cells.
// Regions are ordered by their lowest index; cells inside a region are in
// BFS discovery order starting from that index.
//
// Two cells can reach each other iff they share a region.
//
// Time:   O(L·C).
// Memory: O(L·C) for the seen flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.Len())
	var regions [][]int

	for i0 := 0; i0 < g.Len(); i0++ {
		if !g.Passable(i0) || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf labels each cell with the position of its region in Regions(),
// or -1 for impassable cells.
func (g *Grid) RegionOf() []int {
	label := make([]int, g.Len())
	for i := range label {
		label[i] = -1
	}
	for r, cells := range g.Regions() {
		for _, idx := range cells {
			label[idx] = r
		}
	}

	return label
}
