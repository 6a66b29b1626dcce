// Package fetch performs rate-limited HTTP GETs for the crawl pipeline.
// Every request passes through the per-domain limiter; retry policy belongs
// to callers, not here.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ephellon/gamecatalog/internal/errors"
	"github.com/ephellon/gamecatalog/internal/ratelimit"
)

const defaultTimeout = 30 * time.Second

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// BodyCache caches fetched bodies keyed by URL.
type BodyCache interface {
	Get(url string) (string, bool)
	Put(url, body string) error
}

// Client is the shared fetch layer for all extraction strategies.
type Client struct {
	httpClient HTTPDoer
	limiter    *ratelimit.DomainLimiter
	cache      BodyCache
	userAgent  string
}

// NewClient creates a fetch client with a default per-domain limiter.
func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    ratelimit.NewDomainLimiter(ratelimit.DefaultInterval),
		userAgent:  "gamecatalog/1.0",
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithLimiter sets a custom per-domain rate limiter.
func WithLimiter(l *ratelimit.DomainLimiter) Option {
	return func(client *Client) {
		if l != nil {
			client.limiter = l
		}
	}
}

// WithCache enables body caching for GETs.
func WithCache(c BodyCache) Option {
	return func(client *Client) {
		client.cache = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		if ua != "" {
			client.userAgent = ua
		}
	}
}

// GetText fetches the raw body of rawURL. Network and status failures come
// back as *errors.FetchError.
func (c *Client) GetText(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(rawURL); ok {
			return body, nil
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.NewFetchError(rawURL, err)
	}
	if err := c.limiter.Wait(ctx, u.Hostname()); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.NewFetchError(rawURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewFetchError(rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewStatusError(rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewFetchError(rawURL, err)
	}

	if c.cache != nil {
		_ = c.cache.Put(rawURL, string(body))
	}
	return string(body), nil
}

// GetJSON fetches rawURL and decodes the body as a JSON object. A body that
// is not valid JSON comes back as *errors.DecodeError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string) (map[string]any, error) {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Accept"]; !ok {
		headers["Accept"] = "application/json"
	}

	body, err := c.GetText(ctx, rawURL, headers)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return nil, errors.NewDecodeError(rawURL, err)
	}
	return data, nil
}
