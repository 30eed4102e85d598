// Package key prints the board's key and pointer legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/corkboard/pkg/interaction"
	teaui "tableflip.dev/corkboard/pkg/tui/app"
)

// Key prints the bindings for the selected input source.
type Key struct {
	Source interaction.Source
	Out    io.Writer
}

// Do renders the keyboard and pointer tables.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}

	_, _ = fmt.Fprintln(out, "")
	k.Key(out, "Keys", teaui.KeyBindings())
	_, _ = fmt.Fprintln(out, "")
	k.Key(out, fmt.Sprintf("Pointer (%s)", k.Source), teaui.PointerBindings(k.Source))
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders one binding table under title.
func (k *Key) Key(out io.Writer, title string, bindings []teaui.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Action"))
	for _, b := range bindings {
		tbl.AddRow(b.Input, b.Action)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
