// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Lexicon  LexiconConfig   `toml:"lexicon"`
	Patterns []PatternConfig `toml:"pattern"`
	Store    StoreConfig     `toml:"store"`
	Log      LogConfig       `toml:"log"`
	Practice PracticeConfig  `toml:"practice"`
}

// LexiconConfig maps extra or replacement keyword lists per category.
type LexiconConfig struct {
	// Replace swaps the built-in lists for the configured ones instead of extending them.
	Replace       *bool    `toml:"replace"`
	Dir           *string  `toml:"dir"`
	Positive      []string `toml:"positive"`
	Negative      []string `toml:"negative"`
	Power         []string `toml:"power"`
	Collaborative []string `toml:"collaborative"`
}

// PatternConfig maps one [[pattern]] table.
type PatternConfig struct {
	ID          string   `toml:"id"`
	Description string   `toml:"description"`
	Keywords    []string `toml:"keywords"`
	Responses   []string `toml:"responses"`
}

// StoreConfig maps persistence settings.
type StoreConfig struct {
	StatsFile *string `toml:"stats-file"`
	History   *bool   `toml:"history"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Exercise *string `toml:"exercise"`
	Parallel *int    `toml:"parallel"`
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
