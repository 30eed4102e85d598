package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/corkboard/pkg/note"
)

// Keys of the two independently stored values.
const (
	NotesKey    = "notes"
	DarkModeKey = "darkMode"

	tempDir = ".tmp"
)

// ErrNoState is returned when a key has never been written.
var ErrNoState = errors.New("store: no saved state")

// Persistence defines the persistence contract for the board.
type Persistence interface {
	LoadNotes() ([]note.Note, error)
	SaveNotes(notes []note.Note) error
	LoadDarkMode() (bool, error)
	SaveDarkMode(dark bool) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		TempDir:  filepath.Join(basePath, tempDir),
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) LoadNotes() ([]note.Note, error) {
	val, err := p.read(NotesKey)
	if err != nil {
		return nil, err
	}
	var notes []note.Note
	if err := json.Unmarshal(val, &notes); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", NotesKey, err)
	}
	if notes == nil {
		return nil, fmt.Errorf("store: decode %s: not an array", NotesKey)
	}
	if err := note.Validate(notes); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", NotesKey, err)
	}
	return notes, nil
}

func (p *persistence) SaveNotes(notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	if err := p.d.Write(NotesKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", NotesKey, err)
	}
	return nil
}

func (p *persistence) LoadDarkMode() (bool, error) {
	val, err := p.read(DarkModeKey)
	if err != nil {
		return false, err
	}
	var dark bool
	if err := json.Unmarshal(val, &dark); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", DarkModeKey, err)
	}
	return dark, nil
}

func (p *persistence) SaveDarkMode(dark bool) error {
	data, err := json.Marshal(dark)
	if err != nil {
		return err
	}
	if err := p.d.Write(DarkModeKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", DarkModeKey, err)
	}
	return nil
}
