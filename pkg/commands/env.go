package commands

import (
	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/commands/options"
	"tableflip.dev/corkboard/pkg/logging"
	"tableflip.dev/corkboard/pkg/store"
)

// env is the configuration and logger shared by every subcommand.
type env struct {
	opts options.StoreOptions
	cfg  store.Config
	log  *logging.Log
}

func (e *env) setup() error {
	if e.cfg != nil {
		return nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	if e.opts.Path != "" {
		cfg = store.WithBasePath(cfg, e.opts.Path)
	}

	level := zerolog.InfoLevel
	if e.opts.Debug {
		level = zerolog.DebugLevel
	}
	l, err := logging.New().FromPath(cfg.LogPath()).Level(level).Make()
	if err != nil {
		return err
	}

	e.cfg, e.log = cfg, l
	return nil
}

func (e *env) persistence() (store.Persistence, error) {
	if err := e.setup(); err != nil {
		return nil, err
	}
	return store.Load(e.cfg)
}

func (e *env) logger() *zerolog.Logger {
	if e.log == nil {
		return nil
	}
	return &e.log.Logger
}

func (e *env) close() error {
	if e.log == nil {
		return nil
	}
	err := e.log.Close()
	e.log = nil
	return err
}
