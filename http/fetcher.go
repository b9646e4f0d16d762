// Package http provides an HTTP-based implementation of webgrab.Fetcher.
// It issues a single GET per call and does not execute JavaScript.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/webgrab"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxBodySize caps how many bytes of a response body are read.
const DefaultMaxBodySize = 20 << 20

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements webgrab.Fetcher at compile time.
var _ webgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using HTTP GET requests.
// Redirects are followed; the final URL is reported in the response.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the underlying HTTP client. The Fetcher uses a copy
// carrying the configured timeout; c itself is not modified.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithMaxBodySize sets the largest response body accepted, in bytes.
// Larger bodies fail with a *webgrab.FetchError.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	var client http.Client
	if f.client != nil {
		client = *f.client
	}
	client.Timeout = f.timeout
	f.client = &client

	return f
}

// Fetch retrieves the content at the given URL.
// Failures are returned as *webgrab.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*webgrab.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &webgrab.FetchError{URL: url, Message: err.Error()}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &webgrab.FetchError{URL: url, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &webgrab.FetchError{
			URL:     url,
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, &webgrab.FetchError{URL: url, Status: resp.StatusCode, Message: err.Error()}
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, &webgrab.FetchError{
			URL:     url,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("response body exceeds %d bytes", f.maxBodySize),
		}
	}

	return &webgrab.Response{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
