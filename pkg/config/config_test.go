package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.mau.fi/util/ptr"
)

func TestExampleConfigParses(t *testing.T) {
	cfg, err := Parse([]byte(ExampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Search.BaseURL != "https://www.nextwave.example" {
		t.Fatalf("unexpected base url %q", cfg.Search.BaseURL)
	}
	if cfg.Search.SearchPath != "/api/search" || cfg.Search.TimeoutSecs != 10 {
		t.Fatalf("unexpected search config %+v", cfg.Search)
	}
	if !ptr.Val(cfg.Theme.Sync) {
		t.Fatalf("expected theme sync enabled")
	}
	if cfg.Logging == nil || len(cfg.Logging.Writers) != 1 {
		t.Fatalf("expected one log writer, got %+v", cfg.Logging)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse([]byte("search:\n  base_url: https://nextwave.example/\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Search.BaseURL != "https://nextwave.example" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Search.BaseURL)
	}
	if cfg.DebounceMS != 300 || cfg.Debounce().Milliseconds() != 300 {
		t.Fatalf("expected 300ms debounce, got %d", cfg.DebounceMS)
	}
	if cfg.Theme.TogglePath != "/api/toggle-theme" {
		t.Fatalf("unexpected toggle path %q", cfg.Theme.TogglePath)
	}
	if cfg.Logging == nil {
		t.Fatalf("expected default logging config")
	}
	if err = cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("search:\n  base_url: https://file.example\nprefs_path: /tmp/a.json\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvBaseURL, " https://env.example ")
	t.Setenv(EnvSearchPath, "")
	t.Setenv(EnvPrefsPath, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.BaseURL != "https://env.example" {
		t.Fatalf("expected env base url, got %q", cfg.Search.BaseURL)
	}
	if cfg.PrefsPath != "/tmp/a.json" {
		t.Fatalf("empty env should keep file value, got %q", cfg.PrefsPath)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !errors.Is(cfg.Validate(), ErrNoBaseURL) {
		t.Fatalf("expected ErrNoBaseURL, got %v", cfg.Validate())
	}
	if _, err = Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SITECLIENT_SEARCH_PATH=/find\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv(EnvSearchPath, "")
	os.Unsetenv(EnvSearchPath)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvSearchPath); got != "/find" {
		t.Fatalf("expected /find, got %q", got)
	}
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing dotenv file should be ignored: %v", err)
	}
}
