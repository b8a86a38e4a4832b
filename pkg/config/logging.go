package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exzerolog"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

const defaultLoggingYAML = `
min_level: info
writers:
  - type: stderr
    format: pretty-colored
`

func defaultLogging() *zeroconfig.Config {
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal([]byte(defaultLoggingYAML), &cfg); err != nil {
		panic(fmt.Errorf("invalid default logging config: %w", err))
	}
	return &cfg
}

// SetupLogger compiles the logging section and installs it as the default logger.
// verbose lowers the minimum level to debug.
func (c *Config) SetupLogger(verbose bool) (*zerolog.Logger, error) {
	logCfg := c.Logging
	if logCfg == nil {
		logCfg = defaultLogging()
	}
	if verbose {
		level := zerolog.DebugLevel
		logCfg.MinLevel = &level
	}
	log, err := logCfg.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	exzerolog.SetupDefaults(log)
	return log, nil
}
