// Package dial defines the options, result types and sentinel errors of the
// bucket-queue shortest-path engine.
package dial

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Infinity is the distance of a cell the search never reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine and the path reconstructor.
var (
	// ErrStartOutOfRange indicates the start index is not a cell of the graph.
	ErrStartOutOfRange = errors.New("dial: start cell out of range")

	// ErrFinishOutOfRange indicates the finish index is not a cell of the graph.
	ErrFinishOutOfRange = errors.New("dial: finish cell out of range")

	// ErrSizeMismatch indicates adjacency and weights describe different cell counts.
	ErrSizeMismatch = errors.New("dial: adjacency and weights differ in length")

	// ErrWeightOutOfRange indicates an edge whose cost lies outside [1, MaxWeight].
	// The bucket ring is only correct when every relaxed cost fits that range.
	ErrWeightOutOfRange = errors.New("dial: edge weight outside [1, MaxWeight]")

	// ErrBadMaxWeight indicates WithMaxWeight was given a value outside
	// [1, gridgraph.MaxWeightLimit].
	ErrBadMaxWeight = errors.New("dial: MaxWeight out of range")

	// ErrUnreachable indicates the finish cell was never reached from the start.
	ErrUnreachable = errors.New("dial: finish cell is unreachable")
)

// ParentKind tags the state of a cell's parent slot.
type ParentKind uint8

const (
	// Unvisited marks a cell the search has not reached.
	Unvisited ParentKind = iota
	// IsStart marks the start cell, which has no predecessor.
	IsStart
	// HasParent marks a reached cell; Parent.Index holds its predecessor.
	HasParent
)

// String implements fmt.Stringer.
func (k ParentKind) String() string {
	switch k {
	case Unvisited:
		return "unvisited"
	case IsStart:
		return "start"
	case HasParent:
		return "parent"
	default:
		return fmt.Sprintf("ParentKind(%d)", uint8(k))
	}
}

// Parent is the predecessor slot of one cell.
// Index is meaningful only when Kind == HasParent.
type Parent struct {
	Kind  ParentKind
	Index int
}

// Options configures ShortestPaths.
//
// MaxWeight  – inclusive upper bound on edge costs; the ring holds MaxWeight+1 buckets.
// OnFinalize – called once per cell when its distance becomes final.
// OnDiscard  – called for every stale bucket entry that is skipped.
// EdgeCost   – cost of stepping u→v; nil means weights[v].
type Options struct {
	MaxWeight  int
	OnFinalize func(cell int, dist int64)
	OnDiscard  func(cell int, level int64)
	EdgeCost   func(u, v int) int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns Options with MaxWeight=gridgraph.DefaultMaxWeight
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxWeight:  gridgraph.DefaultMaxWeight,
		OnFinalize: func(int, int64) {},
		OnDiscard:  func(int, int64) {},
	}
}

// WithMaxWeight sets the largest edge cost the engine accepts.
// A w outside [1, gridgraph.MaxWeightLimit] is recorded and surfaced as
// ErrBadMaxWeight by ShortestPaths.
func WithMaxWeight(w int) Option {
	return func(o *Options) {
		if w < 1 || w > gridgraph.MaxWeightLimit {
			o.err = fmt.Errorf("%w: got %d, limit %d", ErrBadMaxWeight, w, gridgraph.MaxWeightLimit)
			return
		}
		o.MaxWeight = w
	}
}

// WithOnFinalize registers a callback run when a cell is finalized.
func WithOnFinalize(fn func(cell int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnDiscard registers a callback run when a stale entry is popped.
func WithOnDiscard(fn func(cell int, level int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithEdgeCost replaces the destination-weight cost with fn(u, v).
// Costs must still lie in [1, MaxWeight].
func WithEdgeCost(fn func(u, v int) int) Option {
	return func(o *Options) {
		o.EdgeCost = fn
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Pushes    int // entries pushed into the ring, start included
	Pops      int // entries popped from the ring
	Discards  int // popped entries skipped because the cell was already final
	Finalized int // cells whose distance became final
	MaxLevel  int64 // last level scanned
}

// Result holds the outcome of one ShortestPaths run. It is read-only once returned.
type Result struct {
	Start  int
	Dist   []int64  // Dist[v] = shortest cost from Start, Infinity if unreached
	Parent []Parent // predecessor slots for path reconstruction
	Stats  Stats
}
