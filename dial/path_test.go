package dial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/dial"
)

func TestBacktrack(t *testing.T) {
	// 0 ← 1 ← 2, 3 unreached
	parents := []dial.Parent{
		{Kind: dial.IsStart},
		{Kind: dial.HasParent, Index: 0},
		{Kind: dial.HasParent, Index: 1},
		{Kind: dial.Unvisited},
	}

	cases := []struct {
		name          string
		start, finish int
		want          []int
		err           error
	}{
		{"FinishIsStart", 0, 0, []int{0}, nil},
		{"Chain", 0, 2, []int{2, 1, 0}, nil},
		{"Unvisited", 0, 3, nil, dial.ErrUnreachable},
		{"StartNotOnChain", 3, 2, nil, dial.ErrUnreachable},
		{"FinishOutOfRange", 0, 4, nil, dial.ErrFinishOutOfRange},
		{"StartOutOfRange", -1, 2, nil, dial.ErrStartOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dial.Backtrack(parents, tc.start, tc.finish)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestBacktrack_Cycle ensures a corrupt parent cycle terminates.
func TestBacktrack_Cycle(t *testing.T) {
	parents := []dial.Parent{
		{Kind: dial.IsStart},
		{Kind: dial.HasParent, Index: 2},
		{Kind: dial.HasParent, Index: 1},
	}
	_, err := dial.Backtrack(parents, 0, 1)
	require.ErrorIs(t, err, dial.ErrUnreachable)
}

// TestPathTo_RoundTrip checks the forward path is the exact reverse of Backtrack.
func TestPathTo_RoundTrip(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 0, 6},
		{7, 8, 9},
	})
	res, err := dial.ShortestPaths(g.Adjacency(), g.Weights(), 0)
	require.NoError(t, err)

	for finish := range res.Dist {
		if !res.Reachable(finish) {
			continue
		}
		back, err := dial.Backtrack(res.Parent, res.Start, finish)
		require.NoError(t, err)
		fwd, err := res.PathTo(finish)
		require.NoError(t, err)
		require.Len(t, fwd, len(back))
		for i := range fwd {
			require.Equal(t, back[len(back)-1-i], fwd[i])
		}
	}
}

func TestParentKindString(t *testing.T) {
	require.Equal(t, "unvisited", dial.Unvisited.String())
	require.Equal(t, "start", dial.IsStart.String())
	require.Equal(t, "parent", dial.HasParent.String())
	require.Equal(t, "ParentKind(7)", dial.ParentKind(7).String())
}
