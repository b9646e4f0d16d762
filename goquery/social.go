package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webgrab"
)

// ExtractSocial finds one profile link per known platform. An anchor is
// claimed by the first platform whose name occurs in its lower-cased href
// ("x.com" also counts as twitter), and the first anchor in document order
// wins for each platform.
//
// Links with a non-HTTP scheme (mailto:, tel:, javascript:, data:) are
// ignored. Absolute hrefs are kept exactly as written; relative ones are resolved
// against the document base URL.
func ExtractSocial(doc *Document) webgrab.SocialLinks {
	var links webgrab.SocialLinks

	doc.FindAll("a", "href", nil).Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" || isNonHTTPLink(href) {
			return
		}

		platform := matchPlatform(strings.ToLower(href))
		if platform == "" || links.Get(platform) != "" {
			return
		}

		if !isAbsolute(href) {
			resolved, ok := doc.Resolve(href)
			if !ok {
				return
			}
			href = resolved
		}
		links.Set(platform, href)
	})

	return links
}

// matchPlatform returns the first platform matching a lower-cased href.
func matchPlatform(href string) string {
	for _, platform := range webgrab.Platforms {
		if strings.Contains(href, platform) {
			return platform
		}
		if platform == webgrab.PlatformTwitter && strings.Contains(href, "x.com") {
			return platform
		}
	}
	return ""
}

func isAbsolute(href string) bool {
	u, err := url.Parse(href)
	return err == nil && u.IsAbs() && u.Host != ""
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
