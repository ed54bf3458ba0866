// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// ExampleGrid_Adjacency shows which neighbours a cell gets once walls are removed.
//
//	1 1 1
//	0 2 1
//
// Cell (0,1) sees (1,1) below, (0,0) left and (0,2) right, in that order.
func ExampleGrid_Adjacency() {
	g, _ := gridgraph.From2D([][]int{
		{1, 1, 1},
		{0, 2, 1},
	})
	adj := g.Adjacency()
	for _, n := range adj[g.Index(gridgraph.Cell{Line: 0, Column: 1})] {
		c := g.Coordinate(n)
		fmt.Printf("(%d,%d) w=%d\n", c.Line, c.Column, g.Weight(n))
	}
	fmt.Println("wall neighbours:", len(adj[3]))

	// Output:
	// (1,1) w=2
	// (0,0) w=1
	// (0,2) w=1
	// wall neighbours: 0
}

// ExampleGrid_Regions counts separated areas of a map.
func ExampleGrid_Regions() {
	g, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 4},
		{0, 0, 0, 4},
		{7, 0, 2, 2},
	})
	for i, r := range g.Regions() {
		fmt.Printf("region %d: %d cells\n", i, len(r))
	}

	// Output:
	// region 0: 2 cells
	// region 1: 4 cells
	// region 2: 1 cells
}
