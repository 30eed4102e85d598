package remove

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/logging"
)

type Remove struct {
	ID int64

	Persistence board.Persistence
	Log         *zerolog.Logger
	Out         io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	b := board.Open(r.Persistence, board.WithLogger(logging.OrNop(r.Log)))
	if _, ok := b.Note(r.ID); !ok {
		return fmt.Errorf("note %d not found", r.ID)
	}
	if err := b.DeleteNote(r.ID); err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(out, "removed %d, %d left\n", r.ID, b.Len())
	return nil
}
