// Package config loads the game configuration: defaults, an optional
// YAML file and MINESWEEPER_* environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper-tui/mines"
)

type Config struct {
	// Difficulty preselects a menu entry: beginner, intermediate or
	// expert.
	Difficulty string `mapstructure:"difficulty"`
	// Board skips the menu entirely when set, e.g. "9x9:10".
	Board    string `mapstructure:"board"`
	Color    bool   `mapstructure:"color"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("difficulty", "beginner")
	v.SetDefault("board", "")
	v.SetDefault("color", true)
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("MINESWEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "minesweeper"))
		}
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &cfg, nil
}

// Params resolves the configured board string, when there is one, into
// game params. A nil result means the game should open on the menu.
func (c Config) Params() (*mines.GameParams, error) {
	if c.Board == "" {
		return nil, nil
	}
	return mines.ParseParams(c.Board)
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "minesweeper.log"
	}
	return filepath.Join(dir, "minesweeper", "minesweeper.log")
}
