package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the board in the terminal",
		Long: `Open the board in the terminal.

Drag a note by its border, click or tap inside it to write, and press the ×
in its corner to delete it. Keys: n new note, d dark mode, esc done, q quit.`,
		Example: `
corkboard ui
CORKBOARD_INPUT=touch corkboard ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return err
			}
			w, h := e.cfg.NoteSize()
			i := ui.UI{
				Input:       e.cfg.Input(),
				NoteWidth:   w,
				NoteHeight:  h,
				Persistence: p,
				Log:         e.logger(),
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
