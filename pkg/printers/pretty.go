package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/corkboard/pkg/note"
)

const defaultWidth = 48

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width bounds the content column.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() uint {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return uint(pp.Width)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " note")
	default:
		_, _ = c.Fprintln(pp.out(), " notes")
	}
}

// Notes prints one row per note: id, position and a one-line preview.
func (pp *PrettyPrint) Notes(notes ...note.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Position"), bold.Sprint("Note"))
	for _, n := range notes {
		tbl.AddRow(y.Sprint(n.ID), n.Position.String(), pp.preview(n.Content))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Note prints a single note with its full content.
func (pp *PrettyPrint) Note(n note.Note) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), n.ID)
	_, _ = fmt.Fprintf(pp.out(), " %s\n", n.Position)
	if strings.TrimSpace(n.Content) == "" {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "(empty)")
		return
	}
	_, _ = fmt.Fprintln(pp.out(), n.Content)
}

// JSON prints the notes in their persisted layout.
func (pp *PrettyPrint) JSON(notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	b, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

func (pp *PrettyPrint) preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if flat == "" {
		return color.New(color.Faint, color.Italic).Sprint("(empty)")
	}
	return truncate.StringWithTail(flat, pp.width(), "…")
}
