package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/nextwave/siteclient/pkg/shared/stringutil"
)

const (
	EnvBaseURL    = "SITECLIENT_BASE_URL"
	EnvSearchPath = "SITECLIENT_SEARCH_PATH"
	EnvPrefsPath  = "SITECLIENT_PREFS_PATH"
)

// ApplyEnv overrides config values with SITECLIENT_* environment variables.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Search.BaseURL = stringutil.EnvOr(cfg.Search.BaseURL, os.Getenv(EnvBaseURL))
	cfg.Search.SearchPath = stringutil.EnvOr(cfg.Search.SearchPath, os.Getenv(EnvSearchPath))
	cfg.PrefsPath = stringutil.EnvOr(cfg.PrefsPath, os.Getenv(EnvPrefsPath))
}

// LoadDotEnv exports the variables in a dotenv file that aren't already set.
// A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
