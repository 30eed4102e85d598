package options

import (
	"github.com/spf13/cobra"
)

// StoreOptions
type StoreOptions struct {
	Path  string
	Debug bool
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory holding the board, overrides the configured path.")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Log at debug level to the configured log file.")
}
