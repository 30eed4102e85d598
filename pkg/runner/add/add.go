package add

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/logging"
	"tableflip.dev/corkboard/pkg/printers"
)

// Add creates a note the same way the board UI does and optionally fills in
// its text.
type Add struct {
	Content string

	Persistence board.Persistence
	Log         *zerolog.Logger
	Out         io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	b := board.Open(n.Persistence, board.WithLogger(logging.OrNop(n.Log)))

	added, err := b.AddNote()
	if err != nil {
		return err
	}
	if n.Content != "" {
		if err := b.UpdateContent(added.ID, n.Content); err != nil {
			return err
		}
		added, _ = b.Note(added.ID)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Note(added)
	return nil
}
