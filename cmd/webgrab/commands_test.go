package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/webgrab"
	main "github.com/fwojciec/webgrab/cmd/webgrab"
	"github.com/fwojciec/webgrab/grab"
	"github.com/fwojciec/webgrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrabber returns a Grabber that extracts result from every page and
// archives images into archive.
func testGrabber(result *webgrab.ExtractionResult, archive *webgrab.Archive) *grab.Grabber {
	return &grab.Grabber{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*webgrab.Response, error) {
				return &webgrab.Response{URL: result.URL, StatusCode: 200}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(*webgrab.Response) (*webgrab.ExtractionResult, error) {
				return result, nil
			},
			CollectImagesFn: func(*webgrab.Response) ([]webgrab.ImageRef, error) {
				return result.Images, nil
			},
		},
		Archiver: &mock.Archiver{
			ArchiveFn: func(context.Context, []webgrab.ImageRef, ...webgrab.ImageKind) (*webgrab.Archive, error) {
				return archive, nil
			},
		},
	}
}

func run(t *testing.T, g *grab.Grabber, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	m := main.NewMain()
	m.Grabber = g
	err = m.Run(context.Background(), args, stdout, stderr)
	return stdout, stderr, err
}

var acme = &webgrab.ExtractionResult{
	URL:     "https://www.acme.com/",
	Company: webgrab.CompanyInfo{Name: "Acme", Title: "Acme - Home"},
	Contact: webgrab.ContactInfo{
		Emails:  []string{"info@acme.com"},
		Phones:  []webgrab.PhoneEntry{{Number: "+1 555 0100", Label: "Sales"}},
		Address: "1 Main St, Springfield",
	},
	Social: webgrab.SocialLinks{Twitter: "https://x.com/acme"},
	Images: []webgrab.ImageRef{{Kind: webgrab.KindLogo, URL: "https://www.acme.com/logo.png"}},
}

func TestScrapeCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, testGrabber(acme, nil), "scrape", "acme.com")
	require.NoError(t, err)

	var got webgrab.ExtractionResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, *acme, got)
}

func TestContactCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints emails, phones and address", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testGrabber(acme, nil), "contact", "acme.com")

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "info@acme.com")
		assert.Contains(t, output, "+1 555 0100  (Sales)")
		assert.Contains(t, output, "1 Main St, Springfield")
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testGrabber(&webgrab.ExtractionResult{URL: "https://empty.com/"}, nil), "contact", "empty.com")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No contact information found")
	})
}

func TestSocialCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, testGrabber(acme, nil), "social", "acme.com")

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "twitter")
	assert.Contains(t, stdout.String(), "https://x.com/acme")
	assert.NotContains(t, stdout.String(), "linkedin")
}

func TestIconsCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes archive to output file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "icons.zip")
		archive := &webgrab.Archive{Data: []byte("zip-bytes"), Entries: []string{"logo_0.png"}, Failed: 1}

		stdout, _, err := run(t, testGrabber(acme, archive), "icons", "acme.com", "-o", out)

		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "zip-bytes", string(data))
		assert.Contains(t, stdout.String(), "Saved 1 files to "+out+" (1 failed)")
	})

	t.Run("reports missing logos", func(t *testing.T) {
		t.Parallel()

		page := &webgrab.ExtractionResult{URL: "https://plain.com/", Images: []webgrab.ImageRef{{Kind: webgrab.KindImage}}}

		_, stderr, err := run(t, testGrabber(page, nil), "icons", "plain.com")

		require.Error(t, err)
		assert.Equal(t, webgrab.ENOTFOUND, webgrab.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: no logos or favicons found")
	})
}

func TestImagesCmd(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "images.zip")
	archive := &webgrab.Archive{Data: []byte("zip-bytes"), Entries: []string{"logo_0.png"}}

	stdout, _, err := run(t, testGrabber(acme, archive), "images", "acme.com", "--output", out)

	require.NoError(t, err)
	assert.FileExists(t, out)
	assert.Equal(t, "Saved 1 files to "+out+"\n", stdout.String())
}

func TestImagesCmd_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, testGrabber(acme, nil), "images", "acme.com", "--kind", "banner")

	require.Error(t, err)
	assert.Equal(t, webgrab.EINVALID, webgrab.ErrorCode(err))
	assert.Contains(t, stderr.String(), "unknown image kind")
}

func TestServeCmd(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := main.NewMain()
	m.Grabber = testGrabber(acme, nil)
	err := m.Run(ctx, []string{"serve", "--addr", "127.0.0.1:0"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, err)
}
