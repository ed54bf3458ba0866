package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestRegions_Simple tests Regions on a 3×4 grid.
//
// Grid (0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 3 9
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Simple(t *testing.T) {
	g, err := From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 3, 9},
	})
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
	if regions[0][0] != 1 {
		t.Errorf("first region starts at %d; want 1", regions[0][0])
	}
}

// TestRegions_DiagonalDoesNotConnect checks that corner contact is not adjacency.
func TestRegions_DiagonalDoesNotConnect(t *testing.T) {
	g, _ := From2D([][]int{
		{1, 0},
		{0, 1},
	})
	if got := len(g.Regions()); got != 2 {
		t.Errorf("got %d regions; want 2", got)
	}
}

// TestRegionOf labels walls with -1.
func TestRegionOf(t *testing.T) {
	g, _ := From2D([][]int{{1, 0, 1}})
	want := []int{0, -1, 1}
	if got := g.RegionOf(); !reflect.DeepEqual(got, want) {
		t.Errorf("RegionOf = %v; want %v", got, want)
	}
}

// TestRegions_AllWalls returns no regions.
func TestRegions_AllWalls(t *testing.T) {
	g, _ := From2D([][]int{{0, 0}, {0, 0}})
	if got := g.Regions(); got != nil {
		t.Errorf("Regions = %v; want nil", got)
	}
}
