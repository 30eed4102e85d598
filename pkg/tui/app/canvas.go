package teaui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// reset terminates a cut span so its attributes do not leak into the next
// run.
const reset = termenv.CSI + termenv.ResetSeq + "m"

type cell struct {
	r     rune
	style int
	wide  bool // r also covers the next cell
	cont  bool // right half of a wide rune
}

// span is a pre-rendered, already styled run of cells, used for the editor.
type span struct {
	x, w int
	s    string
}

// canvas is a cell grid the board is composed on before being flattened to
// one styled string per row.
type canvas struct {
	w, h   int
	cells  []cell
	spans  [][]span
	styles []lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{
		w:      w,
		h:      h,
		cells:  make([]cell, w*h),
		spans:  make([][]span, h),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// style registers s and returns its index for later writes.
func (c *canvas) style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *canvas) at(x, y int) *cell {
	return &c.cells[y*c.w+x]
}

// set writes r at (x, y) and returns how many cells it advanced. Zero-width
// runes are dropped; a wide rune that does not fit is replaced by a space.
func (c *canvas) set(x, y int, r rune, style int) int {
	if y < 0 || y >= c.h || x < 0 || x >= c.w {
		return 1
	}
	rw := runewidth.RuneWidth(r)
	switch {
	case rw == 0:
		return 0
	case rw > 1 && x+1 >= c.w:
		r, rw = ' ', 1
	}
	c.clear(x, y)
	if rw > 1 {
		c.clear(x+1, y)
		*c.at(x, y) = cell{r: r, style: style, wide: true}
		*c.at(x+1, y) = cell{r: ' ', style: style, cont: true}
		return 2
	}
	*c.at(x, y) = cell{r: r, style: style}
	return 1
}

// clear detaches (x, y) from any wide rune or span it belongs to.
func (c *canvas) clear(x, y int) {
	cur := c.at(x, y)
	if cur.cont && x > 0 {
		prev := c.at(x-1, y)
		prev.r, prev.wide = ' ', false
	}
	if cur.wide && x+1 < c.w {
		next := c.at(x+1, y)
		next.r, next.cont = ' ', false
	}
	cur.wide, cur.cont = false, false

	row := c.spans[y]
	for i := 0; i < len(row); i++ {
		sp := row[i]
		if x < sp.x || x >= sp.x+sp.w {
			continue
		}
		if x > sp.x {
			row[i] = span{x: sp.x, w: x - sp.x, s: truncate.String(sp.s, uint(x-sp.x)) + reset}
			continue
		}
		row = append(row[:i], row[i+1:]...)
		i--
	}
	c.spans[y] = row
}

// fill paints a rectangle with r.
func (c *canvas) fill(x, y, w, h int, r rune, style int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, r, style)
		}
	}
}

// text writes s from (x, y), stopping after limit cells.
func (c *canvas) text(x, y int, s string, style int, limit int) {
	end := x + limit
	for _, r := range s {
		if x >= end {
			return
		}
		if runewidth.RuneWidth(r) > end-x {
			r = ' '
		}
		x += c.set(x, y, r, style)
	}
}

// place puts a pre-rendered line at (x, y), cut to at most limit cells.
// Cells it covers keep their content as a fallback if another write later
// breaks the span.
func (c *canvas) place(x, y int, s string, limit int) {
	if y < 0 || y >= c.h || x < 0 || limit <= 0 {
		return
	}
	if x+limit > c.w {
		limit = c.w - x
	}
	if ansi.PrintableRuneWidth(s) > limit {
		s = truncate.String(s, uint(limit)) + reset
	}
	w := ansi.PrintableRuneWidth(s)
	if w == 0 {
		return
	}
	for col := x; col < x+w; col++ {
		c.clear(col, y)
	}
	c.spans[y] = append(c.spans[y], span{x: x, w: w, s: s})
}

func (c *canvas) spanAt(x, y int) (span, bool) {
	for _, sp := range c.spans[y] {
		if sp.x == x {
			return sp, true
		}
	}
	return span{}, false
}

// String renders the canvas, one line per row.
func (c *canvas) String() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		x := 0
		for x < c.w {
			if sp, ok := c.spanAt(x, y); ok {
				out.WriteString(sp.s)
				x += sp.w
				continue
			}
			style := c.at(x, y).style
			run.Reset()
			for x < c.w && c.at(x, y).style == style {
				if _, ok := c.spanAt(x, y); ok {
					break
				}
				if cl := c.at(x, y); !cl.cont {
					run.WriteRune(cl.r)
				}
				x++
			}
			out.WriteString(c.styles[style].Render(run.String()))
		}
	}
	return out.String()
}
