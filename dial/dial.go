package dial

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// ShortestPaths computes the minimum cost from start to every cell reachable
// through adj, where stepping onto cell v costs weights[v].
//
// Returns a Result holding distances, tagged parent slots and run statistics.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxWeight).
//  2. len(adj) == len(weights) (ErrSizeMismatch).
//  3. 0 ≤ start < len(adj) (ErrStartOutOfRange).
//  4. Every relaxed cost lies in [1, MaxWeight] (ErrWeightOutOfRange, detected lazily).
//
// Complexity:
//
//   - Time:  O(V + E + D) where D ≤ V·MaxWeight is the largest finite distance.
//   - Space: O(V + E) for distances, parents and ring entries.
func ShortestPaths(adj gridgraph.Adjacency, weights []int, start int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	// 2) Adjacency and weights must describe the same cells
	if len(adj) != len(weights) {
		return nil, fmt.Errorf("%w: %d lists, %d weights", ErrSizeMismatch, len(adj), len(weights))
	}
	// 3) Start must be a cell of the graph
	if start < 0 || start >= len(adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, len(adj))
	}

	// 4) Seed the ring with the start cell and drain it
	r := newRunner(adj, weights, cfg)
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Start:  start,
		Dist:   r.dist,
		Parent: r.parent,
		Stats:  r.stats,
	}, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner struct {
	adj       gridgraph.Adjacency
	weights   []int
	options   Options
	dist      []int64
	parent    []Parent
	finalized []bool
	ring      *bucketRing
	live      int // entries pushed but not yet popped, across all buckets
	stats     Stats
}

func newRunner(adj gridgraph.Adjacency, weights []int, cfg Options) *runner {
	n := len(adj)
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = Infinity
	}

	return &runner{
		adj:       adj,
		weights:   weights,
		options:   cfg,
		dist:      dist,
		parent:    make([]Parent, n), // zero value is Unvisited
		finalized: make([]bool, n),
		ring:      newBucketRing(cfg.MaxWeight + 1),
	}
}

// init seeds the ring with the start cell at distance 0.
func (r *runner) init(start int) {
	r.dist[start] = 0
	r.parent[start] = Parent{Kind: IsStart}
	r.ring.push(0, start)
	r.live = 1
	r.stats.Pushes = 1
}

// process drains the ring in non-decreasing distance order.
//
// Every live distance lies in [level, level+MaxWeight], a window of
// MaxWeight+1 values, so scanning buckets from level onward and wrapping
// the ring yields entries in the same order a heap would.
func (r *runner) process() error {
	var level int64
	for r.live > 0 {
		// 1) Advance to the next non-empty bucket; live > 0 bounds this scan by MaxWeight steps
		for r.ring.empty(level) {
			level++
		}
		// 2) Pop in FIFO order
		u := r.ring.pop(level)
		r.live--
		r.stats.Pops++

		// 3) Stale entry: u was pushed again with a smaller distance and already finalized.
		if r.finalized[u] {
			r.stats.Discards++
			r.options.OnDiscard(u, level)
			continue
		}

		// 4) Finalize u and relax its neighbours
		r.finalized[u] = true
		r.stats.Finalized++
		r.options.OnFinalize(u, r.dist[u])
		if err := r.relax(u); err != nil {
			return err
		}
	}
	r.stats.MaxLevel = level

	return nil
}

// cost returns the price of stepping u→v.
func (r *runner) cost(u, v int) int {
	if r.options.EdgeCost != nil {
		return r.options.EdgeCost(u, v)
	}

	return r.weights[v]
}

// relax tries to improve every neighbour of the finalized cell u.
// A strictly shorter distance updates dist and parent and pushes a new entry;
// older entries for the same cell stay in the ring and are discarded later.
func (r *runner) relax(u int) error {
	for _, v := range r.adj[u] {
		w := r.cost(u, v)
		if w < 1 || w > r.options.MaxWeight {
			return fmt.Errorf("%w: edge %d→%d weight=%d max=%d", ErrWeightOutOfRange, u, v, w, r.options.MaxWeight)
		}
		nd := r.dist[u] + int64(w)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.parent[v] = Parent{Kind: HasParent, Index: u}
		r.ring.push(nd, v)
		r.live++
		r.stats.Pushes++
	}

	return nil
}
