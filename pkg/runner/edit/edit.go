package edit

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/logging"
	"tableflip.dev/corkboard/pkg/note"
	"tableflip.dev/corkboard/pkg/printers"
)

// Edit replaces the text and/or position of an existing note. Nil fields
// are left alone.
type Edit struct {
	ID       int64
	Content  *string
	Position *note.Position

	Persistence board.Persistence
	Log         *zerolog.Logger
	Out         io.Writer
}

func (e *Edit) Do(ctx context.Context) error {
	b := board.Open(e.Persistence, board.WithLogger(logging.OrNop(e.Log)))
	if _, ok := b.Note(e.ID); !ok {
		return fmt.Errorf("note %d not found", e.ID)
	}

	if e.Content != nil {
		if err := b.UpdateContent(e.ID, *e.Content); err != nil {
			return err
		}
	}
	if e.Position != nil {
		if e.Position.X < 0 || e.Position.Y < 0 {
			return fmt.Errorf("position %s is outside the board", e.Position)
		}
		if err := b.UpdatePosition(e.ID, *e.Position); err != nil {
			return err
		}
	}

	n, _ := b.Note(e.ID)
	pp := printers.PrettyPrint{Out: e.Out}
	pp.Note(n)
	return nil
}
