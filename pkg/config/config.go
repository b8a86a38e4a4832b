// Package config loads the siteclient yaml configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"github.com/nextwave/siteclient/pkg/searchui"
	"github.com/nextwave/siteclient/pkg/sitesearch"
	"github.com/nextwave/siteclient/pkg/theme"
)

//go:embed example-config.yaml
var ExampleConfig string

type Config struct {
	Search     sitesearch.Config  `yaml:"search"`
	Theme      theme.Config       `yaml:"theme"`
	PrefsPath  string             `yaml:"prefs_path"`
	DebounceMS int                `yaml:"debounce_ms"`
	Logging    *zeroconfig.Config `yaml:"logging"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.Search = c.Search.WithDefaults()
	c.Theme = c.Theme.WithDefaults()
	if c.DebounceMS <= 0 {
		c.DebounceMS = int(searchui.DefaultDelay / time.Millisecond)
	}
	if c.Logging == nil {
		c.Logging = defaultLogging()
	}
	return c
}

// Debounce returns the configured quiet period for the search box.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Load reads path if it is set, applies environment overrides and defaults.
// A missing file is not an error when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	ApplyEnv(&cfg)
	return cfg.WithDefaults(), nil
}

// Parse decodes yaml config data without touching the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

var ErrNoBaseURL = errors.New("search.base_url is not configured")

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	if c.Search.BaseURL == "" {
		return ErrNoBaseURL
	}
	return nil
}
