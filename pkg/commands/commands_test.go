package commands

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/corkboard/pkg/note"
)

func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("corkboard %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func listJSON(t *testing.T, dir string) []note.Note {
	t.Helper()
	var notes []note.Note
	out := run(t, dir, "list", "--json")
	if err := json.Unmarshal([]byte(out), &notes); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return notes
}

func TestCommandsRoundTrip(t *testing.T) {
	color.NoColor = true
	t.Setenv("CORKBOARD_CONFIG_PATH", t.TempDir())
	dir := t.TempDir()

	run(t, dir, "add", "call", "the", "plumber")
	notes := listJSON(t, dir)
	if len(notes) != 2 || notes[1].Content != "call the plumber" {
		t.Fatalf("unexpected notes after add: %+v", notes)
	}
	id := strconv.FormatInt(notes[1].ID, 10)

	run(t, dir, "edit", "--id", id, "call", "at", "9")
	run(t, dir, "move", "--id", id, "--x", "20", "--y", "5")
	notes = listJSON(t, dir)
	if notes[1].Content != "call at 9" || notes[1].Position != (note.Position{X: 20, Y: 5}) {
		t.Fatalf("unexpected note after edit and move: %+v", notes[1])
	}

	run(t, dir, "rm", "--id", id)
	if notes = listJSON(t, dir); len(notes) != 1 {
		t.Fatalf("expected one note after rm, got %+v", notes)
	}

	if got := strings.TrimSpace(run(t, dir, "theme")); got != "dark" {
		t.Fatalf("expected dark after toggle, got %q", got)
	}
	if got := strings.TrimSpace(run(t, dir, "theme", "--show")); got != "dark" {
		t.Fatalf("expected dark persisted, got %q", got)
	}
}

func TestEditRequiresID(t *testing.T) {
	t.Setenv("CORKBOARD_CONFIG_PATH", t.TempDir())
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--path", t.TempDir(), "edit", "text"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing --id to fail")
	}
}

func TestIDCompletions(t *testing.T) {
	t.Setenv("CORKBOARD_CONFIG_PATH", t.TempDir())
	dir := t.TempDir()
	run(t, dir, "add", "first line\nsecond line")
	notes := listJSON(t, dir)

	e := &env{}
	e.opts.Path = dir
	got := idCompletions(e, "")
	if len(got) != len(notes) {
		t.Fatalf("expected %d completions, got %q", len(notes), got)
	}
	want := strconv.FormatInt(notes[1].ID, 10) + "\tfirst line"
	if got[1] != want {
		t.Fatalf("expected %q, got %q", want, got[1])
	}
	if none := idCompletions(e, "x"); len(none) != 0 {
		t.Fatalf("expected no completions for prefix x, got %q", none)
	}
}

func TestListWidthBoundsPreview(t *testing.T) {
	color.NoColor = true
	t.Setenv("CORKBOARD_CONFIG_PATH", t.TempDir())
	dir := t.TempDir()
	run(t, dir, "add", "call", "the", "plumber")

	if out := run(t, dir, "list"); !strings.Contains(out, "call the plumber") {
		t.Fatalf("expected full preview at the default width:\n%s", out)
	}
	out := run(t, dir, "list", "--width", "8")
	if strings.Contains(out, "plumber") || !strings.Contains(out, "call") {
		t.Fatalf("expected preview cut to 8 cells:\n%s", out)
	}
}
