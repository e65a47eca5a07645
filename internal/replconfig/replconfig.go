// Package replconfig loads the optional REPL configuration file
// ~/.lispgo.toml, mirroring the way a TOML-configured REPL collaborator
// in the example pack loads its settings at startup.
package replconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the REPL's user-tunable settings. Fields absent from the
// file keep their Default() values, so a missing config file is equivalent
// to an empty one.
type Config struct {
	Prompt         string `toml:"prompt"`
	ShowHostBanner bool   `toml:"show_host_banner"`
	HistoryFile    string `toml:"history_file"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Prompt: "user> "}
}

// Load reads ~/.lispgo.toml if present, overlaying its fields onto the
// defaults. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(home, ".lispgo.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
