package theme

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"

	"github.com/nextwave/siteclient/pkg/prefs"
)

func newStore(t *testing.T) *prefs.Store {
	t.Helper()
	return prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
}

func TestParse(t *testing.T) {
	if got, err := Parse(" Dark "); err != nil || got != Dark {
		t.Fatalf("expected dark, got %q %v", got, err)
	}
	if _, err := Parse("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if Light.Icon() != "moon" || Dark.Icon() != "sun" {
		t.Fatalf("unexpected icons")
	}
}

func TestLoadDefaultsToLight(t *testing.T) {
	store := newStore(t)
	c := NewController(store, "", Config{}, nil, zerolog.Nop())
	if got := c.Load(); got != Light {
		t.Fatalf("expected light, got %s", got)
	}

	_ = store.Set(StorageKey, "purple")
	if got := c.Load(); got != Light {
		t.Fatalf("invalid saved theme should fall back to light, got %s", got)
	}
}

func TestToggleReportsAndPersists(t *testing.T) {
	var mu sync.Mutex
	var posted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != DefaultTogglePath || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Theme string `json:"theme"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		mu.Lock()
		posted = append(posted, body.Theme)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := newStore(t)
	c := NewController(store, server.URL, Config{}, server.Client(), zerolog.Nop())
	var applied []Theme
	c.OnChange(func(theme Theme) { applied = append(applied, theme) })
	c.Load()

	next, err := c.Toggle(context.Background())
	if err != nil || next != Dark {
		t.Fatalf("expected dark, got %s %v", next, err)
	}
	if saved, _ := store.Get(StorageKey); saved != "dark" {
		t.Fatalf("expected persisted dark, got %q", saved)
	}
	if next, _ = c.Toggle(context.Background()); next != Light {
		t.Fatalf("expected light after second toggle, got %s", next)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(posted) != 2 || posted[0] != "dark" || posted[1] != "light" {
		t.Fatalf("unexpected posted themes %v", posted)
	}
	if len(applied) != 3 || applied[2] != Light {
		t.Fatalf("unexpected applied themes %v", applied)
	}
}

func TestToggleIgnoresServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewController(newStore(t), server.URL, Config{}, server.Client(), zerolog.Nop())
	if next, err := c.Toggle(context.Background()); err != nil || next != Dark {
		t.Fatalf("server failure must not fail the toggle: %s %v", next, err)
	}
}

func TestToggleWithoutSync(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := NewController(newStore(t), server.URL, Config{Sync: ptr.Ptr(false)}, server.Client(), zerolog.Nop())
	if _, err := c.Toggle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("sync disabled, no request expected")
	}
}
