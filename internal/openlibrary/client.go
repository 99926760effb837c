package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/five82/bookfinder/internal/metrics"
)

// Searcher runs a title search. It is implemented by *Client and faked in tests.
type Searcher interface {
	Search(ctx context.Context, title string) (SearchResponse, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

const (
	// DefaultSearchURL is the public Open Library search endpoint.
	DefaultSearchURL = "https://openlibrary.org/search.json"

	defaultUserAgent = "bookfinder/0.1"
	limiterBurst     = 5
)

// Options configure a Client.
type Options struct {
	SearchURL string
	UserAgent string
	// Timeout bounds a single request. Zero leaves the transport default in place.
	Timeout time.Duration
	// RequestsPerSecond paces outgoing requests. Zero or less disables pacing.
	RequestsPerSecond float64
	HTTPClient        *http.Client
	Logger            *zap.Logger
}

// Client talks to the Open Library search API.
type Client struct {
	searchURL *url.URL
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewClient builds a Client from opts, filling in defaults for empty fields.
func NewClient(opts Options) (*Client, error) {
	endpoint, err := parseSearchURL(opts.SearchURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), limiterBurst)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		searchURL: endpoint,
		http:      httpClient,
		userAgent: userAgent,
		limiter:   limiter,
		logger:    logger.Named("openlibrary"),
	}, nil
}

// Search issues GET <search-url>?title=<title>. The title is percent-encoded.
func (c *Client) Search(ctx context.Context, title string) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("limiter").Inc()
		return SearchResponse{}, fmt.Errorf("wait for request slot: %w", err)
	}

	reqURL := *c.searchURL
	values := reqURL.Query()
	values.Set("title", title)
	reqURL.RawQuery = values.Encode()

	var payload SearchResponse
	if err := c.doURL(ctx, &reqURL, &payload); err != nil {
		return SearchResponse{}, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("request").Inc()
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamResponsesTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug("search response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		metrics.UpstreamErrorsTotal.WithLabelValues("status").Inc()
		return fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("decode").Inc()
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseSearchURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultSearchURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse search_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse search_url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
