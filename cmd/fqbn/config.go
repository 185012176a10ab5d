package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// cliConfig is the effective configuration of one fqbn invocation.
type cliConfig struct {
	MenusPath  string
	Strict     bool
	MaxOptions int
	LogLevel   slog.Level
}

// fqbn config.toml key mapping to cliConfig.
type fileConfig struct {
	Menus      string `toml:"menus"`
	Strict     bool   `toml:"strict"`
	MaxOptions int    `toml:"max_options"`
	LogLevel   string `toml:"log_level"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		LogLevel: slog.LevelWarn,
	}
}

// loadConfig reads a TOML config file and overlays it on the defaults.
// A relative menus path is resolved against the directory of path.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("menus") {
		// Relative menus paths are relative to the config file.
		cfg.MenusPath = strings.TrimSpace(raw.Menus)
		if cfg.MenusPath != "" && !filepath.IsAbs(cfg.MenusPath) {
			cfg.MenusPath = filepath.Join(filepath.Dir(path), cfg.MenusPath)
		}
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("max_options") {
		if raw.MaxOptions < 0 {
			return cliConfig{}, fmt.Errorf("load config: max_options must not be negative, got %d", raw.MaxOptions)
		}
		cfg.MaxOptions = raw.MaxOptions
	}
	if meta.IsDefined("log_level") {
		level, err := parseLogLevel(raw.LogLevel)
		if err != nil {
			return cliConfig{}, fmt.Errorf("load config: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
