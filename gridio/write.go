package gridio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Terminator ends every printed path.
const Terminator = "."

// WritePath prints path one "line column" pair per line, then Terminator.
func WritePath(w io.Writer, path []gridgraph.Cell) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, c := range path {
		buf = strconv.AppendInt(buf[:0], int64(c.Line), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.Column), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(Terminator + "\n"); err != nil {
		return err
	}

	return bw.Flush()
}
