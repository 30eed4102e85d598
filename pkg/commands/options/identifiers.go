package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ID int64
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().Int64Var(&o.ID, "id", 0,
		"Specify the id of a note, as shown by 'corkboard list'.")
	_ = cmd.MarkFlagRequired("id")
}
