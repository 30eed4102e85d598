package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/corkboard/pkg/note"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) Input() string        { return "auto" }
func (t testConfig) NoteSize() (int, int) { return 24, 7 }
func (t testConfig) LogPath() string      { return "" }

func newTestPersistence(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	return p, base
}

func TestLoadNotesMissing(t *testing.T) {
	p, _ := newTestPersistence(t)

	_, err := p.LoadNotes()
	require.ErrorIs(t, err, ErrNoState)

	_, err = p.LoadDarkMode()
	require.ErrorIs(t, err, ErrNoState)
}

func TestNotesRoundTrip(t *testing.T) {
	p, base := newTestPersistence(t)
	notes := []note.Note{
		{ID: 1, Content: "first", Position: note.Position{X: 50, Y: 50}},
		{ID: 2, Content: "second\nline", Position: note.Position{X: 70.5, Y: 80}},
	}
	require.NoError(t, p.SaveNotes(notes))

	fresh, err := Load(testConfig{path: base})
	require.NoError(t, err)
	got, err := fresh.LoadNotes()
	require.NoError(t, err)
	require.Equal(t, notes, got)
}

func TestSaveNotesWritesArrayLayout(t *testing.T) {
	p, base := newTestPersistence(t)
	require.NoError(t, p.SaveNotes(nil))

	raw, err := os.ReadFile(filepath.Join(base, NotesKey))
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))

	require.NoError(t, p.SaveNotes([]note.Note{{ID: 7, Content: "x", Position: note.Position{X: 1, Y: 2}}}))
	raw, err = os.ReadFile(filepath.Join(base, NotesKey))
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":7,"content":"x","position":{"x":1,"y":2}}]`, string(raw))
}

func TestLoadNotesMalformed(t *testing.T) {
	cases := map[string]string{
		"garbage":       `{not json`,
		"null":          `null`,
		"object":        `{"id":1}`,
		"duplicate ids": `[{"id":1,"content":"","position":{"x":0,"y":0}},{"id":1,"content":"","position":{"x":0,"y":0}}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			p, base := newTestPersistence(t)
			require.NoError(t, os.WriteFile(filepath.Join(base, NotesKey), []byte(raw), 0o644))

			_, err := p.LoadNotes()
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrNoState)
		})
	}
}

func TestDarkModeRoundTrip(t *testing.T) {
	p, base := newTestPersistence(t)
	require.NoError(t, p.SaveDarkMode(true))

	raw, err := os.ReadFile(filepath.Join(base, DarkModeKey))
	require.NoError(t, err)
	require.Equal(t, "true", string(raw))

	dark, err := p.LoadDarkMode()
	require.NoError(t, err)
	require.True(t, dark)

	require.NoError(t, os.WriteFile(filepath.Join(base, DarkModeKey), []byte(`"yes"`), 0o644))
	_, err = p.LoadDarkMode()
	require.Error(t, err)
}

func TestLoadRequiresBasePath(t *testing.T) {
	_, err := Load(testConfig{})
	require.Error(t, err)
}
