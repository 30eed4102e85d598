// Package list prints the saved notes, optionally following changes made by
// other processes.
package list

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/logging"
	"tableflip.dev/corkboard/pkg/printers"
	"tableflip.dev/corkboard/pkg/store"
)

type List struct {
	JSON  bool
	Watch bool
	Width int

	Persistence store.Persistence
	Log         *zerolog.Logger
	Out         io.Writer
}

func (l *List) Do(ctx context.Context) error {
	log := logging.OrNop(l.Log)
	if err := l.print(log); err != nil {
		return err
	}
	if !l.Watch {
		return nil
	}

	events, err := l.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventKeyChanged && ev.Key != store.NotesKey {
				continue
			}
			log.Debug().Str("key", ev.Key).Msg("notes changed")
			if err := l.print(log); err != nil {
				return err
			}
		}
	}
}

func (l *List) print(log zerolog.Logger) error {
	// Opening never writes, so listing a board that was never saved shows
	// the default board without creating it.
	b := board.Open(l.Persistence, board.WithLogger(log))
	notes := b.Notes()

	pp := printers.PrettyPrint{Out: l.Out, Width: l.Width}
	if l.JSON {
		return pp.JSON(notes)
	}
	pp.TitleWithCount("Corkboard", len(notes))
	pp.Notes(notes...)
	return nil
}
