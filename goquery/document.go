// Package goquery implements the page analyzers on top of goquery:
// document parsing, company metadata, contact details, social links and
// image collection.
package goquery

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webgrab"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// skipText lists elements whose text content is never rendered.
var skipText = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Document is a parsed HTML page with its base URL.
// A Document is not modified after Parse returns.
type Document struct {
	doc  *goquery.Document
	base *url.URL
	text string
	hash string
}

// Parse reads an HTML page and parses it. The content type, if known, is used
// to decode the page charset. Relative references resolve against baseURL,
// which must be absolute.
//
// Returns EINVALID for a bad base URL and EPARSE if the body cannot be read
// or parsed.
func Parse(r io.Reader, contentType string, baseURL string) (*Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, webgrab.Errorf(webgrab.EINVALID, "invalid base URL %q", baseURL)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EPARSE, "failed to read HTML: %v", err)
	}

	var src io.Reader = bytes.NewReader(body)
	if len(body) > 0 {
		src, err = charset.NewReader(src, contentType)
		if err != nil {
			return nil, webgrab.Errorf(webgrab.EPARSE, "failed to decode HTML: %v", err)
		}
	}

	doc, err := goquery.NewDocumentFromReader(src)
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EPARSE, "failed to parse HTML: %v", err)
	}

	d := &Document{
		doc:  doc,
		base: base,
		hash: fmt.Sprintf("%x", xxhash.Sum64(body)),
	}
	d.text = strings.Join(strings.Fields(strings.Join(textNodes(doc.Selection), " ")), " ")
	return d, nil
}

// ParseString parses a UTF-8 HTML string.
func ParseString(s string, baseURL string) (*Document, error) {
	return Parse(strings.NewReader(s), "text/html; charset=utf-8", baseURL)
}

// BaseURL returns the URL relative references resolve against.
func (d *Document) BaseURL() string {
	return d.base.String()
}

// Hash returns the xxhash of the raw page bytes in hex.
func (d *Document) Hash() string {
	return d.hash
}

// Text returns the page text with tags stripped and whitespace collapsed.
// Script and style content is not included.
func (d *Document) Text() string {
	return d.text
}

// Find returns the elements matching a CSS selector in document order.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// FindAll returns the elements with the given tag ("*" for any) whose attr
// value matches pattern, in document order. A nil pattern matches any
// element carrying the attribute.
func (d *Document) FindAll(tag, attr string, pattern *regexp.Regexp) *goquery.Selection {
	sel := d.doc.Find(tag + "[" + attr + "]")
	if pattern == nil {
		return sel
	}
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return pattern.MatchString(s.AttrOr(attr, ""))
	})
}

// Resolve converts href to an absolute URL against the base URL.
// Returns false if href cannot be parsed.
func (d *Document) Resolve(href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	return d.base.ResolveReference(ref).String(), true
}

// textNodes returns the rendered text under sel in document order.
func textNodes(sel *goquery.Selection) []string {
	var out []string
	for _, n := range textNodeList(sel.Nodes...) {
		out = append(out, n.Data)
	}
	return out
}

// textNodeList returns the rendered text nodes under roots in document order.
func textNodeList(roots ...*html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipText[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range roots {
		walk(n)
	}
	return out
}

// flatText joins the trimmed, non-empty text under sel with sep.
func flatText(sel *goquery.Selection, sep string) string {
	return flatNodes(sep, sel.Nodes...)
}

func flatNodes(sep string, roots ...*html.Node) string {
	var parts []string
	for _, n := range textNodeList(roots...) {
		if s := strings.TrimSpace(n.Data); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

// firstNonEmpty returns the first accessor result that is non-empty after
// trimming, or "" if none is.
func firstNonEmpty(accessors ...func() string) string {
	for _, get := range accessors {
		if v := strings.TrimSpace(get()); v != "" {
			return v
		}
	}
	return ""
}

// attrOf returns an accessor for a selection attribute.
func attrOf(sel *goquery.Selection, name string) func() string {
	return func() string {
		return sel.AttrOr(name, "")
	}
}

// literal returns an accessor for a fixed value.
func literal(s string) func() string {
	return func() string {
		return s
	}
}
