package dial_test

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/dial"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// heapDijkstra is a plain lazy-deletion Dijkstra over the same adjacency,
// used as the reference the bucket ring must agree with.
func heapDijkstra(adj gridgraph.Adjacency, weights []int, start int) []int64 {
	dist := make([]int64, len(adj))
	for i := range dist {
		dist[i] = dial.Infinity
	}
	visited := make([]bool, len(adj))
	dist[start] = 0
	pq := &nodePQ{{id: start, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true
		for _, v := range adj[item.id] {
			nd := dist[item.id] + int64(weights[v])
			if nd < dist[v] {
				dist[v] = nd
				heap.Push(pq, nodeItem{id: v, dist: nd})
			}
		}
	}

	return dist
}

type nodeItem struct {
	id   int
	dist int64
}

type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// randomGrid returns a lines×columns grid with weights in [0,maxWeight],
// roughly wallPct percent of them zero.
func randomGrid(t testing.TB, rng *rand.Rand, lines, columns, maxWeight, wallPct int) *gridgraph.Grid {
	t.Helper()
	w := make([]int, lines*columns)
	for i := range w {
		if rng.Intn(100) < wallPct {
			continue
		}
		w[i] = 1 + rng.Intn(maxWeight)
	}
	g, err := gridgraph.NewGrid(lines, columns, w, gridgraph.GridOptions{MaxWeight: maxWeight})
	require.NoError(t, err)

	return g
}

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t testing.TB, rows [][]int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.From2D(rows)
	require.NoError(t, err)

	return g
}
