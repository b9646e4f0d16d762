package webgrab

import "context"

// Response holds the result of fetching a URL.
type Response struct {
	// URL is the final URL after redirects. Relative references in the
	// body resolve against it.
	URL string

	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher retrieves raw content from URLs.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns the response.
	// Connection failures, timeouts and non-2xx statuses are reported as
	// *FetchError. Implementations do not retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)
}
