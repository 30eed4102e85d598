package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/commands/options"
	"tableflip.dev/corkboard/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm --id N",
		Aliases: []string{"remove", "delete"},
		Short:   "Take a note off the board",
		Example: `
corkboard rm --id 1700000000000
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:          io.ID,
				Persistence: p,
				Log:         e.logger(),
				Out:         cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	options.AddIDArgs(cmd, io)
	registerIDCompletion(cmd, e)

	topLevel.AddCommand(cmd)
}
