package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "corkboard",
		Short: options.Wrap80("A corkboard of sticky notes in your terminal."),
		Long: options.Wrap80(`Pin notes to a board, drag them around with the mouse
or by touch, and edit them in place. Everything is saved as you go.`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddStoreArgs(cmd, &e.opts)
	AddCommands(cmd, e)
	return cmd
}

func AddCommands(topLevel *cobra.Command, e *env) {
	addUI(topLevel, e)
	addKey(topLevel, e)
	addAdd(topLevel, e)
	addList(topLevel, e)
	addEdit(topLevel, e)
	addMove(topLevel, e)
	addRemove(topLevel, e)
	addTheme(topLevel, e)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}
