package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// tokenReader yields whitespace-separated integers from a stream.
type tokenReader struct {
	sc    *bufio.Scanner
	count int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next parses the next token; what names the value in error messages.
func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %w", ErrMalformedInput, what, err)
		}
		return 0, fmt.Errorf("%w: missing %s after %d tokens", ErrMalformedInput, what, t.count)
	}
	t.count++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s: token %d %q is not an integer", ErrMalformedInput, what, t.count, t.sc.Text())
	}

	return v, nil
}

// Read parses one Problem from r and validates its coordinates.
//
// Failures, all matching ErrInvalidInput:
//   - ErrMalformedInput: missing or non-integer token, non-positive or
//     oversized dimensions, a weight outside [0, MaxWeight].
//   - ErrOutOfRange: a coordinate rejected under the selected BoundsMode.
//
// Tokens after the fourth coordinate are ignored.
func Read(r io.Reader, opts ...Option) (*Problem, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	tr := newTokenReader(r)

	lines, err := tr.next("lines")
	if err != nil {
		return nil, err
	}
	columns, err := tr.next("columns")
	if err != nil {
		return nil, err
	}
	if lines <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrMalformedInput, lines, columns)
	}
	if lines > cfg.MaxCells/columns {
		return nil, fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrMalformedInput, lines, columns, cfg.MaxCells)
	}

	weights := make([]int, lines*columns)
	for i := range weights {
		if weights[i], err = tr.next("weight"); err != nil {
			return nil, err
		}
	}

	var coords [4]int
	for i, what := range [4]string{"start line", "start column", "finish line", "finish column"} {
		if coords[i], err = tr.next(what); err != nil {
			return nil, err
		}
	}
	q := route.Query{
		Start:  gridgraph.Cell{Line: coords[0], Column: coords[1]},
		Finish: gridgraph.Cell{Line: coords[2], Column: coords[3]},
	}
	if err = CheckBounds(q, lines, columns, cfg.Bounds); err != nil {
		return nil, err
	}

	g, err := gridgraph.NewGrid(lines, columns, weights, gridgraph.GridOptions{MaxWeight: cfg.MaxWeight})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return &Problem{Grid: g, Query: q}, nil
}

// CheckBounds validates q against a lines×columns grid under mode.
func CheckBounds(q route.Query, lines, columns int, mode BoundsMode) error {
	s, f := q.Start, q.Finish
	var bad bool
	switch mode {
	case BoundsLegacy:
		bad = s.Line < 0 || s.Line >= lines || f.Line < 0 || f.Column >= columns
	default:
		bad = s.Line < 0 || s.Line >= lines || s.Column < 0 || s.Column >= columns ||
			f.Line < 0 || f.Line >= lines || f.Column < 0 || f.Column >= columns
	}
	if bad {
		return fmt.Errorf("%w: start (%d,%d) finish (%d,%d) in %dx%d (%s bounds)",
			ErrOutOfRange, s.Line, s.Column, f.Line, f.Column, lines, columns, mode)
	}

	return nil
}
