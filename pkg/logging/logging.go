// Package logging builds the zerolog logger shared by the board and the TUI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

// Build collects logger options before Make opens any file.
type Build struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

// Log is a constructed logger and the file it writes to, if any.
type Log struct {
	Logger zerolog.Logger
	file   *os.File
}

func New() *Build {
	return &Build{level: zerolog.InfoLevel}
}

// FromPath appends to the file at path. An empty path keeps the current
// writer.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

func (b *Build) Level(level zerolog.Level) *Build {
	b.level = level
	return b
}

// Make opens the log. Without a path or writer the logger discards
// everything, so a TUI never draws log lines over its own screen.
func (b *Build) Make() (*Log, error) {
	l := &Log{}
	w := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		l.file = f
		w = zerolog.SyncWriter(f)
	}
	if w == nil {
		l.Logger = zerolog.Nop()
		return l, nil
	}
	l.Logger = zerolog.New(w).Level(b.level).With().Timestamp().Logger()
	return l, nil
}

// Close releases the log file.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// OrNop dereferences l. A nil logger discards everything; the zero
// zerolog.Logger has no writer and must never be used directly.
func OrNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}
