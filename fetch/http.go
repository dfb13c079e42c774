package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher retrieves the bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// DefaultMaxBytes caps response bodies unless WithMaxBytes says otherwise.
const DefaultMaxBytes = 32 << 20

// Option configures an HTTP fetcher.
type Option func(*HTTP)

// WithClient sets the HTTP client. The default is http.DefaultClient.
func WithClient(c *http.Client) Option {
	return func(h *HTTP) {
		h.client = c
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) {
		h.userAgent = ua
	}
}

// WithMaxBytes limits the accepted response size. n <= 0 removes the limit.
func WithMaxBytes(n int64) Option {
	return func(h *HTTP) {
		h.maxBytes = n
	}
}

// HTTP fetches resources with GET requests.
// A status code of 400 or above is a failure.
//
// HTTP is safe for concurrent use.
type HTTP struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

var _ Fetcher = (*HTTP)(nil)

// NewHTTP creates an HTTP fetcher.
func NewHTTP(opts ...Option) *HTTP {
	h := &HTTP{
		client:    http.DefaultClient,
		userAgent: "siimg",
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = http.DefaultClient
	}
	return h
}

// Fetch downloads url and returns the response body.
func (h *HTTP) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	res, err := h.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slogger().Warn("fetch: closing response body", "url", url, "err", err)
		}
	}()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, &Error{
			URL:        url,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrStatus, res.Status),
		}
	}

	body := io.Reader(res.Body)
	if h.maxBytes > 0 {
		body = io.LimitReader(res.Body, h.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	if h.maxBytes > 0 && int64(len(data)) > h.maxBytes {
		return nil, &Error{URL: url, Err: fmt.Errorf("%w: over %d bytes", ErrTooLarge, h.maxBytes)}
	}

	slogger().Debug("fetch: downloaded", "url", url, "status", res.StatusCode, "bytes", len(data))
	return data, nil
}
