// Package board owns the ordered note collection and the dark-mode
// preference. Every mutation is written through to persistence before the
// call returns; a failed write is reported but never rolls back memory.
package board

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/note"
	"tableflip.dev/corkboard/pkg/store"
)

// Persistence is the subset of store.Persistence the board writes through to.
type Persistence interface {
	LoadNotes() ([]note.Note, error)
	SaveNotes(notes []note.Note) error
	LoadDarkMode() (bool, error)
	SaveDarkMode(dark bool) error
}

// Layout controls where added notes land: the n-th note (zero based) is
// placed at Start + n*Step.
type Layout struct {
	Start note.Position
	Step  note.Position
}

// DefaultLayout suits a terminal board measured in cells.
var DefaultLayout = Layout{
	Start: note.Position{X: 2, Y: 1},
	Step:  note.Position{X: 4, Y: 2},
}

// Board is the in-memory source of truth for one corkboard.
type Board struct {
	p      Persistence
	log    zerolog.Logger
	now    func() time.Time
	layout Layout

	notes []note.Note
	dark  bool
}

// Option configures a Board.
type Option func(*Board)

func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) { b.log = l }
}

// WithClock replaces time.Now as the id source.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

func WithLayout(l Layout) Option {
	return func(b *Board) { b.layout = l }
}

// Open loads the saved board. Missing or unreadable notes fall back to a
// single empty note at the layout start; an unreadable preference falls back
// to light mode. Open itself never fails.
func Open(p Persistence, opts ...Option) *Board {
	b := &Board{
		p:      p,
		log:    zerolog.Nop(),
		now:    time.Now,
		layout: DefaultLayout,
	}
	for _, opt := range opts {
		opt(b)
	}

	notes, err := p.LoadNotes()
	switch {
	case err == nil:
		b.notes = notes
	case errors.Is(err, store.ErrNoState):
		b.log.Debug().Msg("no saved notes, starting with default board")
	default:
		b.log.Debug().Err(err).Msg("saved notes unreadable, starting with default board")
	}
	if err != nil {
		b.notes = []note.Note{note.New(b.nextID(), b.layout.Start)}
	}

	dark, err := p.LoadDarkMode()
	if err != nil && !errors.Is(err, store.ErrNoState) {
		b.log.Debug().Err(err).Msg("saved dark mode unreadable, using light mode")
	}
	b.dark = err == nil && dark

	return b
}

// Notes returns a copy of the collection in insertion order.
func (b *Board) Notes() []note.Note {
	out := make([]note.Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// Note returns the note with id.
func (b *Board) Note(id int64) (note.Note, bool) {
	if i := b.index(id); i >= 0 {
		return b.notes[i], true
	}
	return note.Note{}, false
}

func (b *Board) Len() int {
	return len(b.notes)
}

func (b *Board) DarkMode() bool {
	return b.dark
}

// AddNote appends an empty note offset from its predecessors and persists.
// The returned note is part of the board even when the error is non-nil.
func (b *Board) AddNote() (note.Note, error) {
	pos := b.layout.Start.Add(b.layout.Step.Scale(float64(len(b.notes))))
	n := note.New(b.nextID(), pos)
	b.notes = append(b.notes, n)
	return n, b.saveNotes("add")
}

// UpdatePosition moves the note with id. Unknown ids are ignored.
func (b *Board) UpdatePosition(id int64, pos note.Position) error {
	i := b.index(id)
	if i < 0 {
		return nil
	}
	b.notes[i].Position = pos
	return b.saveNotes("move")
}

// UpdateContent replaces the text of the note with id. Unknown ids are
// ignored.
func (b *Board) UpdateContent(id int64, content string) error {
	i := b.index(id)
	if i < 0 {
		return nil
	}
	b.notes[i].Content = content
	return b.saveNotes("edit")
}

// DeleteNote removes the note with id. Unknown ids are ignored.
func (b *Board) DeleteNote(id int64) error {
	i := b.index(id)
	if i < 0 {
		return nil
	}
	b.notes = append(b.notes[:i:i], b.notes[i+1:]...)
	return b.saveNotes("delete")
}

// ToggleDarkMode flips the preference and persists it.
func (b *Board) ToggleDarkMode() (bool, error) {
	b.dark = !b.dark
	if err := b.p.SaveDarkMode(b.dark); err != nil {
		b.log.Warn().Err(err).Bool("dark", b.dark).Msg("persist dark mode")
		return b.dark, err
	}
	return b.dark, nil
}

func (b *Board) saveNotes(op string) error {
	if err := b.p.SaveNotes(b.Notes()); err != nil {
		b.log.Warn().Err(err).Str("op", op).Int("notes", len(b.notes)).Msg("persist notes")
		return err
	}
	return nil
}

func (b *Board) index(id int64) int {
	for i := range b.notes {
		if b.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the clock, bumped past every existing id so ids
// stay unique when the clock stalls or runs backwards.
func (b *Board) nextID() int64 {
	id := b.now().UnixMilli()
	for _, n := range b.notes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	return id
}
