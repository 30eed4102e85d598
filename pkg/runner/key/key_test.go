package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/corkboard/pkg/interaction"
)

func TestKeyLegend(t *testing.T) {
	color.NoColor = true
	tests := map[interaction.Source]string{
		interaction.Mouse: "click text",
		interaction.Touch: "tap border",
	}
	for src, want := range tests {
		var out bytes.Buffer
		k := Key{Source: src, Out: &out}
		if err := k.Do(context.Background()); err != nil {
			t.Fatalf("key: %v", err)
		}
		got := out.String()
		for _, s := range []string{"Keys", "toggle dark mode", "Pointer (" + src.String() + ")", want} {
			if !strings.Contains(got, s) {
				t.Fatalf("%s legend missing %q:\n%s", src, s, got)
			}
		}
	}
}
