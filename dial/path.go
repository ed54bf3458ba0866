package dial

import (
	"fmt"
	"slices"
)

// Backtrack walks parent slots from finish back to start and returns the
// visited cells in finish→start order, both ends included.
//
// It fails with ErrUnreachable as soon as it meets a cell whose slot is not
// HasParent before arriving at start. A parent chain longer than the number
// of cells also reports ErrUnreachable, so a corrupt slice cannot loop forever.
//
// Complexity: O(path length).
func Backtrack(parent []Parent, start, finish int) ([]int, error) {
	n := len(parent)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if finish < 0 || finish >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrFinishOutOfRange, finish, n)
	}

	var back []int
	for cur := finish; cur != start; {
		back = append(back, cur)
		p := parent[cur]
		if p.Kind != HasParent || len(back) > n {
			return nil, fmt.Errorf("%w: chain from %d stops at %d (%s)", ErrUnreachable, finish, cur, p.Kind)
		}
		cur = p.Index
	}

	return append(back, start), nil
}

// PathTo returns the shortest path from r.Start to finish in start→finish order.
func (r *Result) PathTo(finish int) ([]int, error) {
	path, err := Backtrack(r.Parent, r.Start, finish)
	if err != nil {
		return nil, err
	}
	slices.Reverse(path)

	return path, nil
}

// Reachable reports whether finish received a finite distance.
func (r *Result) Reachable(finish int) bool {
	return finish >= 0 && finish < len(r.Dist) && r.Dist[finish] != Infinity
}

// Cost returns the distance to finish and whether it is finite.
func (r *Result) Cost(finish int) (int64, bool) {
	if !r.Reachable(finish) {
		return Infinity, false
	}

	return r.Dist[finish], true
}
