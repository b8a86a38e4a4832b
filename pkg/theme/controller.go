package theme

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"

	"github.com/nextwave/siteclient/pkg/prefs"
	"github.com/nextwave/siteclient/pkg/shared/httputil"
)

const (
	StorageKey        = "theme"
	DefaultTogglePath = "/api/toggle-theme"
)

type Config struct {
	TogglePath string `yaml:"toggle_path"`
	// Sync controls whether toggles are reported to the site.
	Sync *bool `yaml:"sync"`
}

func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.TogglePath) == "" {
		c.TogglePath = DefaultTogglePath
	}
	if c.Sync == nil {
		c.Sync = ptr.Ptr(true)
	}
	return c
}

// Controller keeps the active theme, persists it locally and reports toggles to the site.
type Controller struct {
	store     *prefs.Store
	toggleURL string
	sync      bool
	http      *http.Client
	log       zerolog.Logger

	mu       sync.Mutex
	current  Theme
	onChange func(Theme)
}

func NewController(store *prefs.Store, baseURL string, cfg Config, httpClient *http.Client, log zerolog.Logger) *Controller {
	cfg = cfg.WithDefaults()
	if httpClient == nil {
		httpClient = httputil.NewClient(httputil.DefaultTimeoutSecs)
	}
	return &Controller{
		store:     store,
		toggleURL: strings.TrimRight(baseURL, "/") + cfg.TogglePath,
		sync:      ptr.Val(cfg.Sync) && strings.TrimSpace(baseURL) != "",
		http:      httpClient,
		log:       log.With().Str("component", "theme").Logger(),
		current:   Default,
	}
}

// OnChange registers a callback run after every applied theme.
func (c *Controller) OnChange(fn func(Theme)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Load applies the saved theme, or the default if nothing valid is stored.
func (c *Controller) Load() Theme {
	saved := Default
	if value, ok := c.store.Get(StorageKey); ok {
		if parsed, err := Parse(value); err == nil {
			saved = parsed
		} else {
			c.log.Warn().Str("value", value).Msg("Ignoring invalid saved theme")
		}
	}
	c.apply(saved)
	return saved
}

func (c *Controller) Current() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set applies and persists theme without notifying the site.
func (c *Controller) Set(theme Theme) error {
	if err := c.store.Set(StorageKey, string(theme)); err != nil {
		return err
	}
	c.apply(theme)
	return nil
}

// Toggle switches theme, persists it and reports the preference to the site.
// The report is best-effort: its response is ignored and failures are only logged.
func (c *Controller) Toggle(ctx context.Context) (Theme, error) {
	next := c.Current().Toggled()
	if err := c.Set(next); err != nil {
		return c.Current(), err
	}
	if c.sync {
		_, _, err := httputil.PostJSON(ctx, c.http, c.toggleURL, nil, map[string]string{"theme": string(next)})
		if err != nil {
			c.log.Warn().Err(err).Str("theme", string(next)).Msg("Failed to report theme preference")
		}
	}
	return next, nil
}

func (c *Controller) apply(theme Theme) {
	c.mu.Lock()
	c.current = theme
	onChange := c.onChange
	c.mu.Unlock()
	c.log.Debug().Str("theme", string(theme)).Str("icon", theme.Icon()).Msg("Theme applied")
	if onChange != nil {
		onChange(theme)
	}
}
