// Package render draws a weight grid for humans, with a path overlaid.
//
// Cells are padded to the width of the largest weight. Walls print as '#',
// path cells as '*', the endpoints as 'S' and 'F', and every other cell as
// its weight. Once a path is given, cells outside the start's region are
// dimmed and the legend counts the cells reachable from the start. Styling
// comes from lipgloss and degrades to plain text on non-terminals.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Marker characters.
const (
	WallMark   = "#"
	PathMark   = "*"
	StartMark  = "S"
	FinishMark = "F"
)

// Renderer holds the styles used to draw a grid.
type Renderer struct {
	wall     lipgloss.Style
	path     lipgloss.Style
	endpoint lipgloss.Style
	plain    lipgloss.Style
	isolated lipgloss.Style
	frame    lipgloss.Style
	legend   lipgloss.Style
}

// New returns a Renderer whose color profile is detected from out.
func New(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)

	return &Renderer{
		wall:     r.NewStyle().Foreground(lipgloss.Color("240")),
		path:     r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		endpoint: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		plain:    r.NewStyle().Foreground(lipgloss.Color("252")),
		isolated: r.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
		frame:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		legend:   r.NewStyle().Faint(true),
	}
}

// Grid draws g with path overlaid. Path cells outside g are ignored.
func (rd *Renderer) Grid(g *gridgraph.Grid, path []gridgraph.Cell) string {
	marks := make(map[int]string, len(path))
	for i, c := range path {
		if !g.Contains(c) {
			continue
		}
		switch i {
		case 0:
			marks[g.Index(c)] = StartMark
		case len(path) - 1:
			marks[g.Index(c)] = FinishMark
		default:
			marks[g.Index(c)] = PathMark
		}
	}

	label := g.RegionOf()
	regions := 0
	for _, r := range label {
		regions = max(regions, r+1)
	}
	home := -1 // region of the start cell, -1 without a path
	if len(path) > 0 && g.Contains(path[0]) {
		home = label[g.Index(path[0])]
	}

	width := len(strconv.Itoa(g.MaxWeight))
	rows := make([]string, g.Lines)
	cells := make([]string, g.Columns)
	for line := 0; line < g.Lines; line++ {
		for col := 0; col < g.Columns; col++ {
			idx := g.Index(gridgraph.Cell{Line: line, Column: col})
			cells[col] = rd.cell(g, idx, marks[idx], width, home >= 0 && label[idx] != home)
		}
		rows[line] = strings.Join(cells, " ")
	}

	legend := fmt.Sprintf("%dx%d  regions=%d  path=%d cells",
		g.Lines, g.Columns, regions, len(marks))
	if home >= 0 {
		reachable := 0
		for _, r := range label {
			if r == home {
				reachable++
			}
		}
		legend += fmt.Sprintf("  reachable=%d", reachable)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		rd.frame.Render(strings.Join(rows, "\n")),
		rd.legend.Render(legend),
	)
}

func (rd *Renderer) cell(g *gridgraph.Grid, idx int, mark string, width int, isolated bool) string {
	pad := func(s string) string { return fmt.Sprintf("%*s", width, s) }
	switch {
	case mark == StartMark || mark == FinishMark:
		return rd.endpoint.Render(pad(mark))
	case mark == PathMark:
		return rd.path.Render(pad(mark))
	case !g.Passable(idx):
		return rd.wall.Render(pad(WallMark))
	case isolated:
		return rd.isolated.Render(pad(strconv.Itoa(g.Weight(idx))))
	default:
		return rd.plain.Render(pad(strconv.Itoa(g.Weight(idx))))
	}
}
