package interaction

import (
	"fmt"
	"regexp"
	"strings"
)

// Source is the kind of pointer input a session is driven by.
type Source int

const (
	// Mouse is a desktop pointer: press, drag, release.
	Mouse Source = iota
	// Touch is a tap stream; a tap that never moves opens the editor.
	Touch
)

func (s Source) String() string {
	switch s {
	case Touch:
		return "touch"
	default:
		return "mouse"
	}
}

// ParseSource maps a configured input mode to a Source. "auto" (or "")
// reports ok=false so the caller falls back to DetectSource.
func ParseSource(mode string) (src Source, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return Mouse, false, nil
	case "mouse":
		return Mouse, true, nil
	case "touch":
		return Touch, true, nil
	default:
		return Mouse, false, fmt.Errorf("interaction: unknown input mode %q (want auto, mouse or touch)", mode)
	}
}

var touchTerminals = regexp.MustCompile(`(?i)termux|\bish\b|a-shell|blink|juicessh|android|iphone|ipad`)

// touchMarkers are environment variables only set by terminals running on
// touch devices.
var touchMarkers = []string{"TERMUX_VERSION", "ANDROID_ROOT", "CORKBOARD_TOUCH"}

// DetectSource picks the input path for this session from the terminal
// environment. Exactly one path is active per session: hybrid devices that
// deliver both kinds of input are served by whichever this check selects.
func DetectSource(getenv func(string) string) Source {
	for _, k := range touchMarkers {
		if getenv(k) != "" {
			return Touch
		}
	}
	for _, k := range []string{"TERM_PROGRAM", "LC_TERMINAL"} {
		if v := getenv(k); v != "" && touchTerminals.MatchString(v) {
			return Touch
		}
	}
	return Mouse
}

// SelectSource resolves the configured mode, falling back to detection.
func SelectSource(mode string, getenv func(string) string) (Source, error) {
	src, ok, err := ParseSource(mode)
	if err != nil {
		return Mouse, err
	}
	if ok {
		return src, nil
	}
	return DetectSource(getenv), nil
}
