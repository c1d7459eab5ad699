// Package config loads simulation configuration from YAML, falling back
// to built-in defaults when no file is given.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/epochs/internal/model"
)

// Config is the root configuration for a simulation run.
type Config struct {
	Game    model.GameSettings `yaml:"game" json:"game"`
	World   WorldConfig        `yaml:"world" json:"world"`
	Save    SaveConfig         `yaml:"save" json:"save"`
	Logging LoggingConfig      `yaml:"logging" json:"logging"`
}

// WorldConfig controls procedural region generation.
type WorldConfig struct {
	Width    int     `yaml:"width" json:"width"`
	Height   int     `yaml:"height" json:"height"`
	Seed     int64   `yaml:"seed" json:"seed"`
	SeaLevel float64 `yaml:"sea_level" json:"sea_level"`
}

// SaveConfig controls where and how often the game is persisted.
type SaveConfig struct {
	DBPath           string `yaml:"db_path" json:"db_path"`
	AutoSaveSlot     string `yaml:"auto_save_slot" json:"auto_save_slot"`
	AutoSaveInterval int    `yaml:"auto_save_interval" json:"auto_save_interval"` // ticks
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text or json
}

func (w *WorldConfig) ApplyDefaults() {
	if w.Width == 0 {
		w.Width = 16
	}
	if w.Height == 0 {
		w.Height = 16
	}
	if w.SeaLevel == 0 {
		w.SeaLevel = 0.35
	}
}

func (s *SaveConfig) ApplyDefaults() {
	if s.DBPath == "" {
		s.DBPath = "epochs.db"
	}
	if s.AutoSaveSlot == "" {
		s.AutoSaveSlot = "autosave"
	}
	if s.AutoSaveInterval == 0 {
		s.AutoSaveInterval = 100
	}
}

func (l *LoggingConfig) ApplyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func (c *Config) ApplyDefaults() {
	if c.Game == (model.GameSettings{}) {
		c.Game = model.DefaultSettings()
	}
	c.World.ApplyDefaults()
	c.Save.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

// Load reads a YAML config file. A missing file is not an error: the
// defaults are returned instead.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}
