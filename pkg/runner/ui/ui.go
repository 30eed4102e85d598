// Package ui launches the interactive board.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/logging"
	"tableflip.dev/corkboard/pkg/interaction"
	teaui "tableflip.dev/corkboard/pkg/tui/app"
)

var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

type UI struct {
	// Input is the configured input mode: auto, mouse or touch.
	Input      string
	NoteWidth  int
	NoteHeight int

	Persistence board.Persistence
	Log         *zerolog.Logger

	// Getenv and IsTerminal default to the process environment.
	Getenv     func(string) string
	IsTerminal func() bool

	run func(context.Context, *board.Board, teaui.Options) error
}

func (u *UI) Do(ctx context.Context) error {
	isTerm := u.IsTerminal
	if isTerm == nil {
		isTerm = stdoutIsTerminal
	}
	if !isTerm() {
		return ErrNotTerminal
	}
	getenv := u.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	src, err := interaction.SelectSource(u.Input, getenv)
	if err != nil {
		return err
	}
	log := logging.OrNop(u.Log)
	log.Info().Str("input", src.String()).Msg("starting board")

	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	b := board.Open(u.Persistence, board.WithLogger(log))

	run := u.run
	if run == nil {
		run = teaui.Run
	}
	return run(ctx, b, teaui.Options{
		Source:     src,
		NoteWidth:  u.NoteWidth,
		NoteHeight: u.NoteHeight,
		Logger:     u.Log,
	})
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
