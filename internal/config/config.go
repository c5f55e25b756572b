// Package config loads the TOML configuration file. Every field has a
// default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/julianstephens/tempo/internal/constants"
	"github.com/julianstephens/tempo/internal/utils"
)

// Config holds the application configuration.
type Config struct {
	// Backend selects the storage backend: "json" or "sqlite".
	Backend string `toml:"backend"`
	// DataPath overrides the default data file location.
	DataPath string `toml:"data_path"`
	// Debug enables verbose logging to stderr.
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Backend:  "json",
		DataPath: constants.DefaultDataPath,
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. The data path has a leading ~ expanded.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return finalize(cfg)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return finalize(cfg)
}

func finalize(cfg Config) (Config, error) {
	switch cfg.Backend {
	case "", "json":
		cfg.Backend = "json"
	case "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown backend %q: expected json or sqlite", cfg.Backend)
	}

	if cfg.DataPath == "" {
		cfg.DataPath = constants.DefaultDataPath
	}
	expanded, err := utils.ExpandHome(cfg.DataPath)
	if err != nil {
		return Config{}, err
	}
	cfg.DataPath = expanded

	// The sqlite backend keeps its data in a .db file
	if cfg.Backend == "sqlite" && filepath.Ext(cfg.DataPath) == ".json" {
		cfg.DataPath = cfg.DataPath[:len(cfg.DataPath)-len(".json")] + ".db"
	}

	return cfg, nil
}

// Save writes the configuration back to path, creating parent directories as
// needed.
func Save(cfg Config, path string) error {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
