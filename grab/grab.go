// Package grab orchestrates single-page requests: it normalizes the target
// URL, fetches the page once, runs extraction and, on demand, archives the
// page's images.
package grab

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/webgrab"
)

// Archive file name suffixes.
const (
	SuffixImages = "images"
	SuffixIcons  = "icons"
)

// IconKinds are the image kinds included in an icons archive.
var IconKinds = []webgrab.ImageKind{webgrab.KindLogo, webgrab.KindFavicon}

// Grabber runs webgrab requests against injected collaborators.
type Grabber struct {
	Fetcher   webgrab.Fetcher
	Extractor webgrab.Extractor
	Archiver  webgrab.Archiver
}

// Download is an archive ready to be handed to a client.
type Download struct {
	Filename string
	Archive  *webgrab.Archive
}

// NormalizeURL trims the input and prefixes https:// when it does not
// already start with "http". Returns EINVALID for empty input.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", webgrab.Errorf(webgrab.EINVALID, "url is required")
	}
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	return raw, nil
}

// ArchiveFilename names an archive after the host of the page it came from,
// e.g. "acme.com_icons.zip" for https://www.acme.com/about.
func ArchiveFilename(finalURL, suffix string) string {
	host := "download"
	if u, err := url.Parse(finalURL); err == nil && u.Host != "" {
		host = strings.TrimPrefix(u.Host, "www.")
	}
	return host + "_" + suffix + ".zip"
}

// Scrape fetches the page and extracts everything from it.
func (g *Grabber) Scrape(ctx context.Context, rawURL string) (*webgrab.ExtractionResult, error) {
	resp, err := g.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return g.Extractor.Extract(resp)
}

// Images archives the page's images of the given kinds, or all of them when
// kinds is empty. Returns ENOTFOUND when nothing matches.
func (g *Grabber) Images(ctx context.Context, rawURL string, kinds ...webgrab.ImageKind) (*Download, error) {
	return g.download(ctx, rawURL, SuffixImages, "no images found on this page", kinds...)
}

// ParseKinds parses image kind names, as accepted by Images.
func ParseKinds(names []string) ([]webgrab.ImageKind, error) {
	kinds := make([]webgrab.ImageKind, 0, len(names))
	for _, name := range names {
		kind, err := webgrab.ParseImageKind(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Icons archives the page's logos and favicons.
// Returns ENOTFOUND when the page has neither.
func (g *Grabber) Icons(ctx context.Context, rawURL string) (*Download, error) {
	return g.download(ctx, rawURL, SuffixIcons, "no logos or favicons found", IconKinds...)
}

func (g *Grabber) download(ctx context.Context, rawURL, suffix, notFound string, kinds ...webgrab.ImageKind) (*Download, error) {
	resp, err := g.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	images, err := g.Extractor.CollectImages(resp)
	if err != nil {
		return nil, err
	}
	if len(webgrab.FilterImages(images, kinds...)) == 0 {
		return nil, webgrab.Errorf(webgrab.ENOTFOUND, "%s", notFound)
	}

	// The full list is passed so entry indices match the page order.
	archive, err := g.Archiver.Archive(ctx, images, kinds...)
	if err != nil {
		return nil, err
	}

	return &Download{
		Filename: ArchiveFilename(resp.URL, suffix),
		Archive:  archive,
	}, nil
}

func (g *Grabber) fetch(ctx context.Context, rawURL string) (*webgrab.Response, error) {
	target, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	return g.Fetcher.Fetch(ctx, target)
}
