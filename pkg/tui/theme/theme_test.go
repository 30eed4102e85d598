package theme

import "testing"

func TestForSelectsVariant(t *testing.T) {
	if For(false).Dark {
		t.Fatalf("light theme marked dark")
	}
	if !For(true).Dark {
		t.Fatalf("dark theme not marked dark")
	}
}

func TestTint(t *testing.T) {
	base := Light().Note.Paper
	if Tint(base, 12) == Tint(base, -12) {
		t.Fatalf("opposite tints produced the same color")
	}
	if got := Tint("not-a-color", 5); got != "not-a-color" {
		t.Fatalf("invalid color should pass through, got %s", got)
	}
}
