package note

import (
	"encoding/json"
	"testing"
)

func TestNoteJSONLayout(t *testing.T) {
	n := Note{ID: 1700000000000, Content: "buy milk", Position: Position{X: 50, Y: 60}}
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1700000000000,"content":"buy milk","position":{"x":50,"y":60}}`
	if string(b) != want {
		t.Fatalf("unexpected layout:\n got %s\nwant %s", b, want)
	}
}

func TestTitleSkipsBlankLines(t *testing.T) {
	n := Note{Content: "\n   \n  groceries \nmilk"}
	if got := n.Title(); got != "groceries" {
		t.Fatalf("expected groceries, got %q", got)
	}
	if got := (Note{}).Title(); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	if err := Validate([]Note{{ID: 1}, {ID: 2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate([]Note{{ID: 1}, {ID: 1}}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}
