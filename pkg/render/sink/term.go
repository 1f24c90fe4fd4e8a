package sink

import (
	"bytes"
	"math"

	"github.com/plotgrid/plotgrid/pkg/engine"
)

// TermOption configures terminal rendering via [RenderTerm].
type TermOption func(*termRenderer)

type termRenderer struct {
	cols int
	rows int
}

// WithTermSize sets the character grid dimensions. The default is 60x16.
func WithTermSize(cols, rows int) TermOption {
	return func(r *termRenderer) {
		if cols > 0 {
			r.cols = cols
		}
		if rows > 0 {
			r.rows = rows
		}
	}
}

// Glyphs used by the terminal sink.
const (
	glyphPoint    = '•'
	glyphBar      = '█'
	glyphBarAlt   = '▒'
	glyphBaseline = '─'
	glyphBlank    = ' '
)

// RenderTerm draws a layout as a character grid. Screen coordinates are
// resampled onto the grid, so the proportions match the SVG output even
// though the resolution is coarse.
func RenderTerm(l engine.Layout, opts ...TermOption) []byte {
	r := termRenderer{cols: 60, rows: 16}
	for _, opt := range opts {
		opt(&r)
	}

	grid := newTermGrid(r.cols, r.rows)
	baseRow := grid.row(l.Baseline, l.Height)
	for c := 0; c < r.cols; c++ {
		grid.set(c, baseRow, glyphBaseline)
	}

	switch l.Kind {
	case engine.KindLine, engine.KindPoint:
		for _, p := range l.Points {
			grid.set(grid.col(p.X, l.Width), grid.row(p.Y, l.Height), glyphPoint)
		}
	case engine.KindBar:
		for _, b := range l.Bars {
			c := grid.col(b.X, l.Width)
			grid.fillColumn(c, grid.row(b.Top(l.Baseline), l.Height), grid.row(b.Bottom(l.Baseline), l.Height), glyphBar)
		}
	case engine.KindStackedBar:
		for _, g := range l.Groups {
			c0 := grid.col(g.Offset, l.Width)
			c1 := grid.col(g.Offset+g.Width, l.Width)
			for i, s := range g.Segments {
				glyph := glyphBar
				if i%2 == 1 {
					glyph = glyphBarAlt
				}
				top, bottom := s.Y1, s.Y0
				if bottom < top {
					top, bottom = bottom, top
				}
				for c := c0; c <= c1; c++ {
					grid.fillColumn(c, grid.row(top, l.Height), grid.row(bottom, l.Height), glyph)
				}
			}
		}
	}

	return grid.bytes()
}

// termGrid is a rows x cols rune raster with (0,0) at the top left,
// matching the layout's coordinate orientation.
type termGrid struct {
	cols, rows int
	cells      [][]rune
}

func newTermGrid(cols, rows int) *termGrid {
	cells := make([][]rune, rows)
	for i := range cells {
		row := make([]rune, cols)
		for j := range row {
			row[j] = glyphBlank
		}
		cells[i] = row
	}
	return &termGrid{cols: cols, rows: rows, cells: cells}
}

// col maps a screen x onto a grid column.
func (g *termGrid) col(x, frame float64) int {
	return g.clampCol(scaleIndex(x, frame, g.cols))
}

// row maps a screen y onto a grid row.
func (g *termGrid) row(y, frame float64) int {
	return g.clampRow(scaleIndex(y, frame, g.rows))
}

func scaleIndex(v, frame float64, n int) int {
	if frame <= 0 {
		return 0
	}
	return int(math.Round(v / frame * float64(n-1)))
}

func (g *termGrid) clampCol(c int) int { return clampInt(c, 0, g.cols-1) }
func (g *termGrid) clampRow(r int) int { return clampInt(r, 0, g.rows-1) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *termGrid) set(c, r int, glyph rune) {
	g.cells[g.clampRow(r)][g.clampCol(c)] = glyph
}

// fillColumn paints every cell of column c between two rows inclusive.
func (g *termGrid) fillColumn(c, r0, r1 int, glyph rune) {
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	for r := r0; r <= r1; r++ {
		g.set(c, r, glyph)
	}
}

func (g *termGrid) bytes() []byte {
	var buf bytes.Buffer
	for _, row := range g.cells {
		buf.WriteString(string(row))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
