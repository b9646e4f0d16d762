package goquery_test

import (
	"testing"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractSocial(t *testing.T, html string) webgrab.SocialLinks {
	t.Helper()

	doc, err := goquery.ParseString(html, "https://acme.com/about")
	require.NoError(t, err)
	return goquery.ExtractSocial(doc)
}

func TestExtractSocial(t *testing.T) {
	t.Parallel()

	t.Run("finds every platform", func(t *testing.T) {
		t.Parallel()

		html := `<footer>
<a href="https://www.LinkedIn.com/company/Acme">in</a>
<a href="https://x.com/acme">x</a>
<a href="https://facebook.com/acme">fb</a>
<a href="https://instagram.com/acme">ig</a>
<a href="https://www.youtube.com/@acme">yt</a>
</footer>`

		assert.Equal(t, webgrab.SocialLinks{
			LinkedIn:  "https://www.LinkedIn.com/company/Acme",
			Twitter:   "https://x.com/acme",
			Facebook:  "https://facebook.com/acme",
			Instagram: "https://instagram.com/acme",
			YouTube:   "https://www.youtube.com/@acme",
		}, extractSocial(t, html))
	})

	t.Run("first anchor wins for twitter", func(t *testing.T) {
		t.Parallel()

		links := extractSocial(t, `<a href="https://twitter.com/acme">t</a><a href="https://x.com/acme2">x</a>`)
		assert.Equal(t, "https://twitter.com/acme", links.Twitter)

		links = extractSocial(t, `<a href="https://x.com/acme2">x</a><a href="https://twitter.com/acme">t</a>`)
		assert.Equal(t, "https://x.com/acme2", links.Twitter)
	})

	t.Run("anchor is claimed by first matching platform", func(t *testing.T) {
		t.Parallel()

		links := extractSocial(t, `<a href="https://www.linkedin.com/shareArticle?source=twitter">share</a>`)

		assert.Equal(t, "https://www.linkedin.com/shareArticle?source=twitter", links.LinkedIn)
		assert.Empty(t, links.Twitter)
	})

	t.Run("resolves relative links", func(t *testing.T) {
		t.Parallel()

		links := extractSocial(t, `<a href="/go/facebook">fb</a>`)

		assert.Equal(t, "https://acme.com/go/facebook", links.Facebook)
	})

	t.Run("ignores non-HTTP links", func(t *testing.T) {
		t.Parallel()

		links := extractSocial(t, `<a href="mailto:hello@x.com">mail</a><a href="">empty</a>`)

		assert.Equal(t, webgrab.SocialLinks{}, links)
	})

	t.Run("lets a later profile link claim a platform after a skipped one", func(t *testing.T) {
		t.Parallel()

		links := extractSocial(t, `<a href="mailto:press@linkedin.com">press</a><a href="https://linkedin.com/company/acme">in</a>`)

		assert.Equal(t, "https://linkedin.com/company/acme", links.LinkedIn)
	})
}
