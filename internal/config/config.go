// Package config loads the num512 command's settings from an optional TOML
// file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	num512 "github.com/shabbyrobe/go-num512"
)

var ErrInvalidJobs = errors.New("config: jobs must be at least 1")

// Config holds the evaluation settings. The zero value is not valid; start
// from Default.
type Config struct {
	InBase   int    `toml:"in_base"`
	OutBase  int    `toml:"out_base"`
	Signed   bool   `toml:"signed"`
	Jobs     int    `toml:"jobs"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		InBase:   10,
		OutBase:  10,
		Jobs:     runtime.GOMAXPROCS(0),
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := num512.ParseU512("0", c.InBase); err != nil {
		return fmt.Errorf("config: in_base %d: %w", c.InBase, err)
	}
	if _, err := num512.ParseU512("0", c.OutBase); err != nil {
		return fmt.Errorf("config: out_base %d: %w", c.OutBase, err)
	}
	if c.Jobs < 1 {
		return ErrInvalidJobs
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty string is treated as "warn".
func (c Config) Level() (zerolog.Level, error) {
	s := strings.TrimSpace(strings.ToLower(c.LogLevel))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
