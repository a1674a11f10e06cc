package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads platform settings.
// Search order: customPath -> ~/.syscrit/config.yaml -> ./config.yaml ->
// compiled defaults. A missing file is not an error; a present but
// malformed file is only an error when explicitly requested.
func Load(customPath string) (Settings, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = Default()
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = Default()
	}

	return cfg, nil
}

// normalize backfills zero values with defaults so a partial config file
// only overrides what it names.
func normalize(cfg Settings) Settings {
	def := Default()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.Field.Width <= 0 {
		cfg.Field.Width = def.Field.Width
	}
	if cfg.Field.Height <= 0 {
		cfg.Field.Height = def.Field.Height
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	return cfg
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".syscrit", "config.yaml")
}
