package sitesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exerrors"

	"github.com/nextwave/siteclient/pkg/shared/httputil"
	"github.com/nextwave/siteclient/pkg/shared/logutil"
)

var (
	// ErrTransport covers unreachable hosts, timeouts and non-2xx statuses.
	ErrTransport = errors.New("search request failed")
	// ErrMalformedResponse is returned when the body isn't {"results": [...]}.
	ErrMalformedResponse = errors.New("malformed search response")
)

// Client queries the site's search endpoint.
type Client struct {
	endpoint *url.URL
	http     *http.Client
	log      zerolog.Logger
}

// NewClient validates the config and builds a client. The HTTP client may be nil.
func NewClient(cfg Config, httpClient *http.Client, log zerolog.Logger) (*Client, error) {
	cfg = cfg.WithDefaults()
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("search base_url is empty")
	}
	endpoint, err := url.Parse(cfg.BaseURL + cfg.SearchPath)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint: %w", err)
	}
	if httpClient == nil {
		httpClient = httputil.NewClient(cfg.TimeoutSecs)
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		log:      log.With().Str("component", "sitesearch").Logger(),
	}, nil
}

// Endpoint returns the full URL that would be requested for query.
func (c *Client) Endpoint(query string) string {
	u := *c.endpoint
	values := u.Query()
	values.Set("q", query)
	u.RawQuery = values.Encode()
	return u.String()
}

// Search sends the raw query to the endpoint and returns results in response order.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	start := time.Now()
	data, status, err := httputil.GetJSON(ctx, c.http, c.Endpoint(query), nil)
	if err != nil {
		return nil, exerrors.NewDualError(ErrTransport, err)
	}
	var body responseBody
	if err = json.Unmarshal(data, &body); err != nil {
		return nil, exerrors.NewDualError(ErrMalformedResponse, err)
	} else if body.Results == nil {
		return nil, exerrors.NewDualError(ErrMalformedResponse, errors.New("missing results array"))
	}
	logutil.FromContext(ctx, &c.log).Debug().
		Int("status", status).
		Int("count", len(*body.Results)).
		Dur("took", time.Since(start)).
		Msg("Search response received")
	return *body.Results, nil
}
