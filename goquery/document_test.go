package goquery_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"testing/iotest"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("rejects relative base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ParseString("<p>hello</p>", "/about")

		require.Error(t, err)
		assert.Equal(t, webgrab.EINVALID, webgrab.ErrorCode(err))
	})

	t.Run("reports read failures as parse errors", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.Parse(iotest.ErrReader(errors.New("connection reset")), "text/html", "https://example.com")

		require.Error(t, err)
		assert.Equal(t, webgrab.EPARSE, webgrab.ErrorCode(err))
	})

	t.Run("accepts an empty body", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, doc.Text())
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		t.Parallel()

		body := []byte("<html><body><p>Caf\xe9 Acme</p></body></html>")

		doc, err := goquery.Parse(bytes.NewReader(body), "text/html; charset=iso-8859-1", "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Café Acme", doc.Text())
	})

	t.Run("hashes raw content", func(t *testing.T) {
		t.Parallel()

		a, err := goquery.ParseString("<p>one</p>", "https://example.com")
		require.NoError(t, err)
		b, err := goquery.ParseString("<p>one</p>", "https://example.com")
		require.NoError(t, err)
		c, err := goquery.ParseString("<p>two</p>", "https://example.com")
		require.NoError(t, err)

		assert.NotEmpty(t, a.Hash())
		assert.Equal(t, a.Hash(), b.Hash())
		assert.NotEqual(t, a.Hash(), c.Hash())
	})
}

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Acme</title><style>p { color: red; }</style><script>var x = 1;</script></head>` +
		`<body><p>Hello   <b>world</b></p><p>next
line</p></body></html>`

	doc, err := goquery.ParseString(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Acme Hello world next line", doc.Text())
}

func TestDocument_Resolve(t *testing.T) {
	t.Parallel()

	doc, err := goquery.ParseString("<html></html>", "https://example.com/about")
	require.NoError(t, err)

	tests := []struct {
		href string
		want string
	}{
		{"/favicon.ico", "https://example.com/favicon.ico"},
		{"img/a.png", "https://example.com/img/a.png"},
		{"//cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"https://other.com/b.png", "https://other.com/b.png"},
		{"  /padded.png ", "https://example.com/padded.png"},
	}

	for _, tt := range tests {
		got, ok := doc.Resolve(tt.href)
		assert.True(t, ok, tt.href)
		assert.Equal(t, tt.want, got, tt.href)
	}

	_, ok := doc.Resolve("%zz")
	assert.False(t, ok)
}

func TestDocument_FindAll(t *testing.T) {
	t.Parallel()

	html := `<body><a href="tel:5550100">call</a><a href="/about">about</a><a>no href</a></body>`

	doc, err := goquery.ParseString(html, "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, doc.FindAll("a", "href", nil).Length())
	assert.Equal(t, 1, doc.FindAll("a", "href", regexp.MustCompile(`^tel:`)).Length())
	assert.Equal(t, 0, doc.FindAll("*", "class", regexp.MustCompile(`address`)).Length())
}
