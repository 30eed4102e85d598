package theme

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/logging"
)

// Theme flips the saved dark-mode preference, or only reports it when Show
// is set.
type Theme struct {
	Show bool

	Persistence board.Persistence
	Log         *zerolog.Logger
	Out         io.Writer
}

func (t *Theme) Do(ctx context.Context) error {
	b := board.Open(t.Persistence, board.WithLogger(logging.OrNop(t.Log)))
	dark := b.DarkMode()
	if !t.Show {
		var err error
		if dark, err = b.ToggleDarkMode(); err != nil {
			return err
		}
	}

	out := t.Out
	if out == nil {
		out = color.Output
	}
	_, err := fmt.Fprintln(out, Name(dark))
	return err
}

func Name(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
