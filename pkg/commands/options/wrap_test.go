package options

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap("  a corkboard   of sticky notes\nin your terminal ", 12)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Fatalf("line %q longer than 12", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "a corkboard of sticky notes in your terminal" {
		t.Fatalf("words changed: %q", got)
	}
	if Wrap("   ", 10) != "   " {
		t.Fatalf("blank text should pass through")
	}
}
