package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/corkboard/pkg/note"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestNotesTable(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 12}

	pp.Notes(
		note.Note{ID: 17, Content: "buy milk\nand eggs and bread", Position: note.Position{X: 2, Y: 1}},
		note.Note{ID: 18, Position: note.Position{X: 6, Y: 3}},
	)

	out := buf.String()
	for _, want := range []string{"ID", "Position", "17", "(2,1)", "buy milk an…", "18", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNotesEmpty(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Notes()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}

func TestJSONUsesPersistedLayout(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	if err := pp.JSON(nil); err != nil {
		t.Fatalf("json: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", buf.String())
	}

	buf.Reset()
	in := []note.Note{{ID: 5, Content: "hi", Position: note.Position{X: 1.5, Y: 2}}}
	if err := pp.JSON(in); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	pos, ok := got[0]["position"].(map[string]any)
	if !ok || pos["x"] != 1.5 || got[0]["content"] != "hi" {
		t.Fatalf("unexpected layout %v", got)
	}
}
