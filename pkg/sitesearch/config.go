package sitesearch

import "strings"

const (
	DefaultSearchPath  = "/api/search"
	DefaultTimeoutSecs = 10
)

// Config points the client at the site's search endpoint.
type Config struct {
	BaseURL     string `yaml:"base_url"`
	SearchPath  string `yaml:"search_path"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c Config) WithDefaults() Config {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if strings.TrimSpace(c.SearchPath) == "" {
		c.SearchPath = DefaultSearchPath
	}
	if !strings.HasPrefix(c.SearchPath, "/") {
		c.SearchPath = "/" + c.SearchPath
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}
