package config

import (
	"flag"
)

// FromArgs registers the program flags on fs, parses args and builds the
// configuration: Default, then the -config file if given, then every flag
// that was set explicitly. The result is validated.
func FromArgs(fs *flag.FlagSet, args []string) (Config, error) {
	configPath := fs.String("config", "", "TOML config file")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	logFile := fs.String("log-file", "", "Log file path (set to empty to discard logs)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *configPath != "" {
		var err error
		if cfg, err = Load(*configPath); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		}
	})

	return cfg, cfg.Validate()
}
