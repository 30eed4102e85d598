package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Pin a new note to the board",
		Example: `
corkboard add
corkboard add call the plumber
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return err
			}
			a := add.Add{
				Content:     strings.Join(args, " "),
				Persistence: p,
				Log:         e.logger(),
				Out:         cmd.OutOrStdout(),
			}
			return a.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
