package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webgrab"
)

var (
	iconRelPattern = regexp.MustCompile(`(?i)icon`)
	logoPattern    = regexp.MustCompile(`(?i)logo`)
)

// CollectImages returns the page's favicons followed by its <img> elements,
// each resolved to an absolute URL, in document order. Duplicates are kept.
//
// An <img> takes its source from src, then data-src; images with neither are
// skipped. It is classified as a logo when "logo" appears in its source,
// class or alt text.
func CollectImages(doc *Document) []webgrab.ImageRef {
	images := []webgrab.ImageRef{}

	doc.FindAll("link", "rel", iconRelPattern).Each(func(_ int, link *goquery.Selection) {
		href := strings.TrimSpace(link.AttrOr("href", ""))
		if href == "" {
			return
		}
		resolved, ok := doc.Resolve(href)
		if !ok {
			return
		}
		images = append(images, webgrab.ImageRef{
			Kind: webgrab.KindFavicon,
			URL:  resolved,
			Alt:  "favicon",
		})
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := firstNonEmpty(attrOf(img, "src"), attrOf(img, "data-src"))
		if src == "" {
			return
		}
		resolved, ok := doc.Resolve(src)
		if !ok {
			return
		}
		alt := img.AttrOr("alt", "")
		images = append(images, webgrab.ImageRef{
			Kind: classifyImage(src, img.AttrOr("class", ""), alt),
			URL:  resolved,
			Alt:  alt,
		})
	})

	return images
}

func classifyImage(src, class, alt string) webgrab.ImageKind {
	if logoPattern.MatchString(src + " " + class + " " + alt) {
		return webgrab.KindLogo
	}
	return webgrab.KindImage
}
