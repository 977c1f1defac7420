package downloads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultRegistryURL is the public npm download counts API.
const DefaultRegistryURL = "https://api.npmjs.org"

// labelLayout formats a day as "Jan 02".
const labelLayout = "Jan 02"

type rangeResponse struct {
	Downloads []struct {
		Day       string `json:"day"`
		Downloads int64  `json:"downloads"`
	} `json:"downloads"`
	Error string `json:"error"`
}

type pointResponse struct {
	Downloads int64  `json:"downloads"`
	Error     string `json:"error"`
}

// Client queries the registry for one package.
type Client struct {
	baseURL string
	pkg     string
	client  *http.Client
	logger  *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.client = hc }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for pkg. An empty baseURL uses DefaultRegistryURL.
// For testing, pass an httptest.Server URL.
func NewClient(baseURL, pkg string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		pkg:     pkg,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Package returns the package name the client queries.
func (c *Client) Package() string { return c.pkg }

// Fetch makes a single attempt at both endpoints concurrently. It never
// returns nil; failures produce Fallback with Err set.
func (c *Client) Fetch(ctx context.Context) *Stats {
	var (
		weekly  rangeResponse
		monthly pointResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "/downloads/range/last-week/", &weekly)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/downloads/point/last-month/", &monthly)
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("download stats unavailable", zap.String("package", c.pkg), zap.Error(err))
		return Fallback(c.pkg, err)
	}

	if msg := firstNonEmpty(weekly.Error, monthly.Error); msg != "" {
		err := fmt.Errorf("%w: %s", ErrRegistry, msg)
		c.logger.Warn("download stats unavailable", zap.String("package", c.pkg), zap.Error(err))
		return Fallback(c.pkg, err)
	}

	stats := &Stats{Package: c.pkg, Monthly: monthly.Downloads}
	for _, d := range weekly.Downloads {
		p := DataPoint{Label: d.Day, Value: d.Downloads}
		if day, err := time.Parse(time.DateOnly, d.Day); err == nil {
			p.Day = day.UTC()
			p.Label = day.UTC().Format(labelLayout)
		}
		stats.Trend = append(stats.Trend, p)
		stats.Weekly += d.Downloads
	}

	stats.Status = StatusEmpty
	if stats.Weekly > 0 {
		stats.Status = StatusReady
	}
	c.logger.Debug("download stats fetched",
		zap.String("package", c.pkg),
		zap.Int64("weekly", stats.Weekly),
		zap.Int64("monthly", stats.Monthly),
	)
	return stats
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	u := c.baseURL + endpoint + url.PathEscape(c.pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("downloads: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "initgen-docs")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("downloads: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, resp.StatusCode, endpoint)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("downloads: decode %s: %w", endpoint, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
