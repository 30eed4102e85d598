package ui

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/interaction"
	"tableflip.dev/corkboard/pkg/note"
	"tableflip.dev/corkboard/pkg/store"
	teaui "tableflip.dev/corkboard/pkg/tui/app"
)

type emptyPersistence struct{}

func (emptyPersistence) LoadNotes() ([]note.Note, error) { return nil, store.ErrNoState }
func (emptyPersistence) SaveNotes([]note.Note) error     { return nil }
func (emptyPersistence) LoadDarkMode() (bool, error)     { return false, store.ErrNoState }
func (emptyPersistence) SaveDarkMode(bool) error         { return nil }

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestRefusesWithoutTerminal(t *testing.T) {
	u := UI{
		Persistence: emptyPersistence{},
		IsTerminal:  func() bool { return false },
		run: func(context.Context, *board.Board, teaui.Options) error {
			t.Fatalf("board should not start")
			return nil
		},
	}
	if err := u.Do(context.Background()); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}

func TestSelectsInputSource(t *testing.T) {
	tests := map[string]struct {
		input string
		env   map[string]string
		want  interaction.Source
	}{
		"auto on desktop": {input: "auto", want: interaction.Mouse},
		"auto in termux":  {input: "", env: map[string]string{"TERMUX_VERSION": "0.118"}, want: interaction.Touch},
		"forced mouse":    {input: "mouse", env: map[string]string{"TERMUX_VERSION": "0.118"}, want: interaction.Mouse},
		"forced touch":    {input: "touch", want: interaction.Touch},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got teaui.Options
			u := UI{
				Input:       tc.input,
				NoteWidth:   30,
				NoteHeight:  8,
				Persistence: emptyPersistence{},
				Getenv:      env(tc.env),
				IsTerminal:  func() bool { return true },
				run: func(_ context.Context, b *board.Board, opts teaui.Options) error {
					if b.Len() != 1 {
						t.Fatalf("expected default board, got %d notes", b.Len())
					}
					got = opts
					return nil
				},
			}
			if err := u.Do(context.Background()); err != nil {
				t.Fatalf("do: %v", err)
			}
			if got.Source != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Source)
			}
			if got.NoteWidth != 30 || got.NoteHeight != 8 {
				t.Fatalf("note size not passed through: %dx%d", got.NoteWidth, got.NoteHeight)
			}
		})
	}
}

func TestRejectsUnknownInput(t *testing.T) {
	u := UI{
		Input:       "stylus",
		Persistence: emptyPersistence{},
		IsTerminal:  func() bool { return true },
		Getenv:      env(nil),
	}
	if err := u.Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown input mode")
	}
}
