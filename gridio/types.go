// Package gridio reads routing problems from a whitespace-separated text
// stream and writes paths back in the line-oriented answer format.
//
// Input, in order:
//
//	lines columns
//	w(0,0) w(0,1) ... w(lines-1,columns-1)
//	startLine startColumn finishLine finishColumn
//
// Output: one "line column" pair per line from start to finish, then ".".
package gridio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// Sentinel errors. ErrMalformedInput and ErrOutOfRange both match ErrInvalidInput.
var (
	// ErrInvalidInput is the parent of every input failure.
	ErrInvalidInput = errors.New("gridio: incorrect input")

	// ErrMalformedInput indicates a missing, non-numeric or out-of-range token.
	ErrMalformedInput = fmt.Errorf("%w: malformed stream", ErrInvalidInput)

	// ErrOutOfRange indicates a query coordinate rejected by the bounds check.
	ErrOutOfRange = fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)
)

// BoundsMode selects how query coordinates are validated.
type BoundsMode int

const (
	// BoundsStrict checks all four coordinates against the grid.
	BoundsStrict BoundsMode = iota
	// BoundsLegacy reproduces the historical check: startLine in [0,lines),
	// finishLine ≥ 0, finishColumn < columns; startColumn is not checked.
	BoundsLegacy
)

// String implements fmt.Stringer.
func (m BoundsMode) String() string {
	if m == BoundsLegacy {
		return "legacy"
	}

	return "strict"
}

// Problem is one parsed query: the grid plus its two endpoints.
type Problem struct {
	Grid  *gridgraph.Grid
	Query route.Query
}

// Options configures Read.
type Options struct {
	Bounds    BoundsMode
	MaxWeight int
	MaxCells  int // upper bound on lines*columns; guards the allocation
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// DefaultMaxCells bounds lines*columns unless WithMaxCells overrides it.
const DefaultMaxCells = 1 << 28

// DefaultOptions returns strict bounds, MaxWeight=gridgraph.DefaultMaxWeight
// and MaxCells=DefaultMaxCells.
func DefaultOptions() Options {
	return Options{
		Bounds:    BoundsStrict,
		MaxWeight: gridgraph.DefaultMaxWeight,
		MaxCells:  DefaultMaxCells,
	}
}

// WithBounds selects the coordinate validation mode.
func WithBounds(m BoundsMode) Option {
	return func(o *Options) {
		o.Bounds = m
	}
}

// WithMaxWeight sets the largest accepted cell weight. Values below 1 are ignored.
func WithMaxWeight(w int) Option {
	return func(o *Options) {
		if w >= 1 {
			o.MaxWeight = w
		}
	}
}

// WithMaxCells caps lines*columns. Values below 1 are ignored.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxCells = n
		}
	}
}
