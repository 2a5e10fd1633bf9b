package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted when --config is not
// given.
const ConfigEnv = "RGG_CONFIG"

var defaultConfigPaths = []string{"./rgg.toml", "./rgg.yaml", "./rgg.yml"}

// Config holds the CLI settings. Every field has a usable zero value after
// applyDefaults.
type Config struct {
	LogLevel   string `toml:"log_level" yaml:"log_level"`
	NoColor    bool   `toml:"no_color" yaml:"no_color"`
	HideTokens bool   `toml:"hide_tokens" yaml:"hide_tokens"`
	Indent     int    `toml:"indent" yaml:"indent"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Indent <= 0 {
		c.Indent = 2
	}
}

// Level parses LogLevel. Unknown names fall back to warn.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// LoadConfig reads a TOML or YAML file, chosen by extension.
func LoadConfig(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FindConfig loads explicit if set, then $RGG_CONFIG, then the first of
// ./rgg.toml, ./rgg.yaml and ./rgg.yml that exists. With none of them
// present it returns the defaults.
func FindConfig(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		for _, p := range defaultConfigPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
