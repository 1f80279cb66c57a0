// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game        GameConfig        `toml:"game"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Log         LogConfig         `toml:"log"`
}

// GameConfig maps gameplay settings.
type GameConfig struct {
	Name          *string `toml:"name"`
	Mode          *string `toml:"mode"`
	Scheme        *string `toml:"scheme"`
	PracticeStage *int    `toml:"practice-stage"`
	Bank          *string `toml:"bank"`
}

// LeaderboardConfig maps high-score persistence settings.
type LeaderboardConfig struct {
	Backend *string `toml:"backend"`
	Path    *string `toml:"path"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
