package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/interaction"
	"tableflip.dev/corkboard/pkg/runner/key"
)

func addKey(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the keys and pointer gestures of the board",
		Example: `
corkboard key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := interaction.SelectSource(e.cfg.Input(), os.Getenv)
			if err != nil {
				return err
			}
			k := key.Key{Source: src, Out: cmd.OutOrStdout()}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
