// Package note defines the persisted note value and its JSON layout.
package note

import (
	"fmt"
	"strings"
)

// Position is a point in board-local coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p shifted by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by n on both axes.
func (p Position) Scale(n float64) Position {
	return Position{X: p.X * n, Y: p.Y * n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Note is a single card on the board. ID never changes once assigned.
type Note struct {
	ID       int64    `json:"id"`
	Content  string   `json:"content"`
	Position Position `json:"position"`
}

// New returns an empty note with the given id at pos.
func New(id int64, pos Position) Note {
	return Note{ID: id, Position: pos}
}

// Title is the first non-blank line of the content.
func (n Note) Title() string {
	for _, line := range strings.Split(n.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func (n Note) String() string {
	return fmt.Sprintf("%d %s %q", n.ID, n.Position, n.Title())
}

// Validate reports notes that break the collection invariants.
func Validate(notes []Note) error {
	seen := make(map[int64]struct{}, len(notes))
	for _, n := range notes {
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("note: duplicate id %d", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}
