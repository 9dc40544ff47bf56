// Package config loads the settings of the chainhash console program.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/theflywheel/chainhash"
)

// Names accepted by table.hash
const (
	// HashPoly31 selects chainhash.Poly31, the default
	HashPoly31 = "poly31"
	// HashXXHash selects chainhash.XXHash
	HashXXHash = "xxhash"
)

// Config is the full program configuration
type Config struct {
	Table TableConfig `toml:"table"`
	Log   LogConfig   `toml:"log"`
}

// TableConfig controls how the hash table is created
type TableConfig struct {
	InitialCapacity int    `toml:"initial_capacity"`
	Hash            string `toml:"hash"`
}

// LogConfig controls where operation logs go. An empty File discards them.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Table: TableConfig{
			InitialCapacity: chainhash.DefaultCapacity,
			Hash:            HashPoly31,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "chainhash.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads a TOML file on top of Default. Keys the file sets override the
// defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Table.InitialCapacity < 1 {
		return fmt.Errorf("table.initial_capacity must be at least 1, got %d", c.Table.InitialCapacity)
	}
	if _, err := c.Table.HashFunc(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log.max_size_mb and log.max_backups must not be negative")
	}
	return nil
}

// HashFunc resolves the configured hash name
func (t TableConfig) HashFunc() (chainhash.HashFunc, error) {
	switch strings.ToLower(t.Hash) {
	case HashPoly31, "":
		return chainhash.Poly31, nil
	case HashXXHash:
		return chainhash.XXHash, nil
	default:
		return nil, fmt.Errorf("table.hash: unknown hash %q (want %s or %s)", t.Hash, HashPoly31, HashXXHash)
	}
}

// Options converts the table settings into chainhash options
func (t TableConfig) Options() ([]chainhash.Option, error) {
	hash, err := t.HashFunc()
	if err != nil {
		return nil, err
	}
	return []chainhash.Option{
		chainhash.WithInitialCapacity(t.InitialCapacity),
		chainhash.WithHashFunc(hash),
	}, nil
}
