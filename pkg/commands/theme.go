package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command, e *env) {
	show := false

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Toggle dark mode",
		Example: `
corkboard theme
corkboard theme --show
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return err
			}
			t := theme.Theme{
				Show:        show,
				Persistence: p,
				Log:         e.logger(),
				Out:         cmd.OutOrStdout(),
			}
			return t.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the current theme without changing it.")

	topLevel.AddCommand(cmd)
}
