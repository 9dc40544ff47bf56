package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chainhash"
	"github.com/theflywheel/chainhash/internal/config"
	"github.com/theflywheel/chainhash/internal/console"
	"github.com/theflywheel/chainhash/internal/logging"
)

func main() {
	if err := run(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run builds the table and logger from fs and args and drives the console
// until the user exits. Deferred cleanup always runs before main exits.
func run(fs *flag.FlagSet, args []string) error {
	cfg, err := config.FromArgs(fs, args)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	opts, err := cfg.Table.Options()
	if err != nil {
		return fmt.Errorf("invalid table config: %w", err)
	}

	table, err := chainhash.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	logger.WithFields(log.Fields{
		"capacity": table.Capacity(),
		"hash":     cfg.Table.Hash,
	}).Info("session started")

	if _, err := tea.NewProgram(console.NewModel(table, logger)).Run(); err != nil {
		logger.WithError(err).Error("console stopped")
		return fmt.Errorf("console failed: %w", err)
	}
	return nil
}
