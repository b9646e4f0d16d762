// Package zip implements webgrab.Archiver, packaging downloaded images into
// a deflate-compressed zip archive.
package zip

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTimeout bounds each image download.
	DefaultTimeout = 10 * time.Second

	// DefaultConcurrency is the number of images downloaded at once.
	DefaultConcurrency = 4

	// DefaultMinSize is the body size an image must exceed to be kept.
	// Smaller bodies are usually tracking pixels or error stubs.
	DefaultMinSize = 100

	// DefaultExt is used when the image URL carries no usable extension.
	DefaultExt = ".png"

	maxExtLength = 5
)

// Ensure Archiver implements webgrab.Archiver at compile time.
var _ webgrab.Archiver = (*Archiver)(nil)

// Archiver downloads images through a webgrab.Fetcher and writes them into
// one zip archive.
type Archiver struct {
	fetcher     webgrab.Fetcher
	timeout     time.Duration
	concurrency int
	minSize     int
}

// Option configures an Archiver.
type Option func(*Archiver)

// WithTimeout sets the per-image download timeout.
func WithTimeout(d time.Duration) Option {
	return func(a *Archiver) {
		a.timeout = d
	}
}

// WithConcurrency sets how many images are downloaded at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(a *Archiver) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithMinSize sets the body size an image must exceed to be archived.
func WithMinSize(n int) Option {
	return func(a *Archiver) {
		a.minSize = n
	}
}

// NewArchiver creates an Archiver that downloads through fetcher.
func NewArchiver(fetcher webgrab.Fetcher, opts ...Option) *Archiver {
	a := &Archiver{
		fetcher:     fetcher,
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
		minSize:     DefaultMinSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// download holds the outcome of fetching one selected image.
type download struct {
	name string
	body []byte
	ok   bool
}

// Archive downloads the selected images and writes every successful one as
// an entry named {kind}_{index}{ext}, where index is the image's position in
// images. Entries appear in index order regardless of download order.
func (a *Archiver) Archive(ctx context.Context, images []webgrab.ImageRef, kinds ...webgrab.ImageKind) (*webgrab.Archive, error) {
	results := make([]download, len(images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	var selected int
	for i, img := range images {
		if !webgrab.HasKind(kinds, img.Kind) {
			continue
		}
		selected++
		i, img := i, img
		g.Go(func() error {
			results[i] = a.download(gctx, i, img)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	archive := &webgrab.Archive{Entries: []string{}}

	for _, r := range results {
		if !r.ok {
			continue
		}
		w, err := zw.Create(r.name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", r.name, err)
		}
		if _, err := w.Write(r.body); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", r.name, err)
		}
		archive.Entries = append(archive.Entries, r.name)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}

	archive.Data = buf.Bytes()
	archive.Failed = selected - len(archive.Entries)
	return archive, nil
}

func (a *Archiver) download(ctx context.Context, index int, img webgrab.ImageRef) download {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.fetcher.Fetch(ctx, img.URL)
	if err != nil {
		return download{}
	}
	if resp.StatusCode != 200 || len(resp.Body) <= a.minSize {
		return download{}
	}

	return download{
		name: EntryName(img.Kind, index, img.URL),
		body: resp.Body,
		ok:   true,
	}
}

// EntryName returns the archive entry name for the image at index.
func EntryName(kind webgrab.ImageKind, index int, rawURL string) string {
	return fmt.Sprintf("%s_%d%s", kind, index, entryExt(rawURL))
}

// entryExt returns the extension of the URL path, at most five characters
// including the dot, with anything but ASCII letters and digits removed.
func entryExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DefaultExt
	}

	ext := path.Ext(u.Path)
	if len(ext) > maxExtLength {
		ext = ext[:maxExtLength]
	}

	var b strings.Builder
	for _, r := range strings.TrimPrefix(ext, ".") {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultExt
	}
	return "." + b.String()
}
