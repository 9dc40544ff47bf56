// Package logging builds the logrus logger used by the console program.
//
// Logs never go to the terminal, since the menu owns it: they are written to a
// size-rotated file, or discarded when no file is configured.
package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/theflywheel/chainhash/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for cfg and the closer of its output
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	logger.SetOutput(out)
	return logger, out, nil
}
