package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	defaultDirName  = "siteclient"
	defaultFileName = "prefs.json"
)

// File is the on-disk layout of the preference store.
type File struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store is a small persistent key/value store, the local equivalent of browser storage.
type Store struct {
	path string
	mu   sync.Mutex
}

// ResolvePath expands ~ and falls back to the user config directory.
func ResolvePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed != "" {
		if strings.HasPrefix(trimmed, "~") {
			if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
				return filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
			}
		}
		return filepath.Clean(trimmed)
	}
	dir, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		return filepath.Join(os.TempDir(), defaultDirName, defaultFileName)
	}
	return filepath.Join(dir, defaultDirName, defaultFileName)
}

func NewStore(path string) *Store {
	return &Store{path: ResolvePath(path)}
}

func (s *Store) Path() string {
	return s.path
}

// Get returns the stored value for key. Missing or unreadable files read as empty.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.load().Values[key]
	return value, ok
}

// Set stores value under key and rewrites the file atomically.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	file := s.load()
	file.Values[key] = value
	return s.save(file)
}

func (s *Store) load() File {
	empty := File{Version: 1, Values: map[string]string{}}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return empty
	}
	var parsed File
	if err = json5.Unmarshal(data, &parsed); err != nil {
		return empty
	}
	if parsed.Version == 0 {
		parsed.Version = 1
	}
	if parsed.Values == nil {
		parsed.Values = map[string]string{}
	}
	return parsed
}

func (s *Store) save(file File) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	payload, err := json5.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
