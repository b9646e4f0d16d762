package mock

import (
	"context"

	"github.com/fwojciec/webgrab"
)

var _ webgrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webgrab.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*webgrab.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*webgrab.Response, error) {
	return f.FetchFn(ctx, url)
}
