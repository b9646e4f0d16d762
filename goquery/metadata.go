package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webgrab"
)

// ExtractCompany derives company metadata from the page title and meta tags.
// When several meta tags carry the same key, the last one wins.
func ExtractCompany(doc *Document) webgrab.CompanyInfo {
	var info webgrab.CompanyInfo

	info.Title = strings.TrimSpace(doc.Find("title").First().Text())

	siteName := false
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		key, ok := sel.Attr("name")
		if !ok {
			key = sel.AttrOr("property", "")
		}
		content := sel.AttrOr("content", "")

		switch strings.ToLower(key) {
		case "description", "og:description":
			info.Description = content
		case "keywords":
			info.Keywords = content
		case "og:site_name":
			info.Name = content
			siteName = true
		}
	})

	if !siteName {
		info.Name = CompanyNameFromTitle(info.Title)
	}

	return info
}

// CompanyNameFromTitle guesses a company name from a page title by keeping
// the text before the first "|" and then before the first "-".
// Example: "Acme Inc | Home" → "Acme Inc".
func CompanyNameFromTitle(title string) string {
	name, _, _ := strings.Cut(title, "|")
	name, _, _ = strings.Cut(name, "-")
	return strings.TrimSpace(name)
}
