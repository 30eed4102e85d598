package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestMakeWithoutTargetDiscards(t *testing.T) {
	l, err := New().Make()
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	l.Logger.Info().Msg("dropped")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestMakeFromWriter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New().FromWriter(&buf).Level(zerolog.WarnLevel).Make()
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	l.Logger.Info().Msg("quiet")
	l.Logger.Warn().Msg("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, `"message":"loud"`) {
		t.Fatalf("expected warn line, got %s", out)
	}
}

func TestMakeFromPathAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corkboard.log")
	for _, msg := range []string{"one", "two"} {
		l, err := New().FromPath(path).Make()
		if err != nil {
			t.Fatalf("make: %v", err)
		}
		l.Logger.Info().Msg(msg)
		if err := l.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if lines := strings.Count(string(raw), "\n"); lines != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", lines, raw)
	}
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	l.Info().Msg("dropped")

	var buf bytes.Buffer
	w := zerolog.New(&buf)
	got := OrNop(&w)
	got.Info().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected message written, got %q", buf.String())
	}
}
