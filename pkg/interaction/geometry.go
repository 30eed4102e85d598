package interaction

import "tableflip.dev/corkboard/pkg/note"

// Point is a pointer location in screen coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent cells never both match.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Geometry measures the board and the note's rendered box. Both are read on
// every move so a resized board takes effect mid-drag.
type Geometry interface {
	Board() Rect
	Note() Rect
}

// GeometryFunc adapts a function returning both rects to Geometry.
type GeometryFunc func() (board, note Rect)

func (f GeometryFunc) Board() Rect {
	b, _ := f()
	return b
}

func (f GeometryFunc) Note() Rect {
	_, n := f()
	return n
}

// DragPosition converts a pointer location into a board-local note position
// that keeps the note fully inside the board:
//
//	d = pointer - offset - board.TopLeft
//	x = max(0, min(d.X, board.Width - note.Width))
//	y = max(0, min(d.Y, board.Height - note.Height))
func DragPosition(pointer, offset Point, board, n Rect) note.Position {
	d := pointer.Sub(offset).Sub(board.TopLeft())
	return note.Position{
		X: clamp(d.X, board.Width-n.Width),
		Y: clamp(d.Y, board.Height-n.Height),
	}
}

// clamp limits v to [0, upper]; when upper is negative the lower bound wins.
func clamp(v, upper float64) float64 {
	if v > upper {
		v = upper
	}
	if v < 0 {
		v = 0
	}
	return v
}
