package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/commands/options"
	"tableflip.dev/corkboard/pkg/runner/list"
)

func addList(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the notes on the board",
		Example: `
corkboard list
corkboard list --json
corkboard list --width 80
corkboard list --watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.persistence()
			if err != nil {
				return oo.HandleError(err)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			l := list.List{
				JSON:        oo.JSON,
				Watch:       wo.Watch,
				Width:       oo.Width,
				Persistence: p,
				Log:         e.logger(),
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(ctx))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddWidthArg(cmd, oo)
	options.AddWatchArg(cmd, wo)

	topLevel.AddCommand(cmd)
}
