package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/commands/options"
	"tableflip.dev/corkboard/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit --id N text",
		Short: "Replace the text of a note",
		Example: `
corkboard edit --id 1700000000000 call the plumber at 9
corkboard edit --id 1700000000000 ""
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return err
			}
			content := strings.Join(args, " ")
			ed := edit.Edit{
				ID:          io.ID,
				Content:     &content,
				Persistence: p,
				Log:         e.logger(),
				Out:         cmd.OutOrStdout(),
			}
			return ed.Do(context.Background())
		},
	}

	options.AddIDArgs(cmd, io)
	registerIDCompletion(cmd, e)

	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:   "move --id N --x X --y Y",
		Short: "Move a note to a board position",
		Example: `
corkboard move --id 1700000000000 --x 10 --y 4
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return err
			}
			pos := po.Position()
			ed := edit.Edit{
				ID:          io.ID,
				Position:    &pos,
				Persistence: p,
				Log:         e.logger(),
				Out:         cmd.OutOrStdout(),
			}
			return ed.Do(context.Background())
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddPositionArgs(cmd, po)
	registerIDCompletion(cmd, e)

	topLevel.AddCommand(cmd)
}
