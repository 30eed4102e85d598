package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/corkboard/pkg/note"
)

// PositionOptions
type PositionOptions struct {
	X, Y float64
}

func AddPositionArgs(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().Float64Var(&o.X, "x", 0, "Board column of the note's left edge.")
	cmd.Flags().Float64Var(&o.Y, "y", 0, "Board row of the note's top edge.")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
}

func (o *PositionOptions) Position() note.Position {
	return note.Position{X: o.X, Y: o.Y}
}
