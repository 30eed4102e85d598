package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the board is stored and presented.
type Config interface {
	BasePath() string
	Input() string
	NoteSize() (width, height int)
	LogPath() string
}

const (
	defaultPath       = "~/.corkboard.db"
	defaultNoteWidth  = 24
	defaultNoteHeight = 7
)

// LoadConfig reads .corkboard.yaml from $CORKBOARD_CONFIG_PATH or the working
// directory. Every key may be overridden with a CORKBOARD_ prefixed variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("input", "auto")
	v.SetDefault("note.width", defaultNoteWidth)
	v.SetDefault("note.height", defaultNoteHeight)
	v.SetDefault("log", "")
	v.SetConfigName(".corkboard") // .yaml is implicit
	v.SetEnvPrefix("CORKBOARD")
	v.AutomaticEnv()

	if override := os.Getenv("CORKBOARD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	logPath, err := homedir.Expand(v.GetString("log"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:       path,
		InputMode:  v.GetString("input"),
		NoteWidth:  v.GetInt("note.width"),
		NoteHeight: v.GetInt("note.height"),
		Log:        logPath,
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	InputMode  string `json:"input"`
	NoteWidth  int    `json:"noteWidth"`
	NoteHeight int    `json:"noteHeight"`
	Log        string `json:"log"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Input() string {
	return f.InputMode
}

func (f *fileConfig) NoteSize() (int, int) {
	w, h := f.NoteWidth, f.NoteHeight
	if w <= 0 {
		w = defaultNoteWidth
	}
	if h <= 0 {
		h = defaultNoteHeight
	}
	return w, h
}

func (f *fileConfig) LogPath() string {
	return f.Log
}

// WithBasePath returns cfg with its storage location replaced. A nil cfg
// starts from the defaults.
func WithBasePath(cfg Config, path string) Config {
	fc := &fileConfig{
		Path:       path,
		InputMode:  "auto",
		NoteWidth:  defaultNoteWidth,
		NoteHeight: defaultNoteHeight,
	}
	if cfg != nil {
		fc.InputMode = cfg.Input()
		fc.NoteWidth, fc.NoteHeight = cfg.NoteSize()
		fc.Log = cfg.LogPath()
	}
	return fc
}
