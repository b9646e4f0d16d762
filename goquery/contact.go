package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webgrab"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	emailPattern        = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	telHrefPattern      = regexp.MustCompile(`(?i)^\s*tel:`)
	phoneKeywordPattern = regexp.MustCompile(`(?i)phone|tel|call|fax|mobile|cell`)
	labeledPhonePattern = regexp.MustCompile(`(?i)(phone|tel|call|fax|mobile|cell)[:\s]*([+\d\s().\-]{7,20})`)
	addressClassPattern = regexp.MustCompile(`(?i)address|contact|location`)
)

const (
	// maxLabeledMatches caps how many keyword text nodes the labeled-text
	// pass inspects.
	maxLabeledMatches = 10

	// minPhoneLength is the shortest normalized number accepted from text.
	minPhoneLength = 7

	// phoneContextSelector matches the ancestors searched for a tel: link label.
	phoneContextSelector = "div, li, p, span"
)

// ExtractContact derives emails, labeled phone numbers and an address.
// Emails are scanned from text, the page's plain-text rendering.
// Phones come from tel: links first, then from labeled text, deduplicated by
// normalized number and capped at webgrab.MaxPhones.
func ExtractContact(doc *Document, text string) webgrab.ContactInfo {
	phones := newPhoneSet(webgrab.MaxPhones)
	collectTelLinks(doc, phones)
	collectLabeledPhones(doc, phones)

	return webgrab.ContactInfo{
		Emails:  ExtractEmails(text),
		Phones:  phones.entries,
		Address: extractAddress(doc),
	}
}

// ExtractEmails returns the distinct email addresses in text in the order
// they first appear.
func ExtractEmails(text string) []string {
	emails := []string{}
	seen := make(map[string]bool)
	for _, email := range emailPattern.FindAllString(text, -1) {
		if seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}

// NormalizePhone strips everything but digits from a phone number, keeping a
// leading "+". The result is a dedup key, not a display value.
func NormalizePhone(number string) string {
	number = strings.TrimSpace(number)

	var b strings.Builder
	if strings.HasPrefix(number, "+") {
		b.WriteByte('+')
	}
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 1 && strings.HasPrefix(number, "+") {
		return ""
	}
	return b.String()
}

// phoneSet is an ordered, capped set of phone entries keyed by normalized
// number. The first entry for a number wins.
type phoneSet struct {
	limit   int
	seen    map[string]bool
	entries []webgrab.PhoneEntry
}

func newPhoneSet(limit int) *phoneSet {
	return &phoneSet{
		limit:   limit,
		seen:    make(map[string]bool),
		entries: []webgrab.PhoneEntry{},
	}
}

// add records the entry unless its number is empty, already present, or the
// set is full. It reports whether the entry was added.
func (s *phoneSet) add(number, label string) bool {
	key := NormalizePhone(number)
	if key == "" || s.seen[key] || s.full() {
		return false
	}
	s.seen[key] = true
	s.entries = append(s.entries, webgrab.PhoneEntry{Number: number, Label: label})
	return true
}

func (s *phoneSet) full() bool {
	return len(s.entries) >= s.limit
}

// collectTelLinks adds the numbers of tel: anchors, labeled from the text
// that precedes the link in its nearest block ancestor.
func collectTelLinks(doc *Document, phones *phoneSet) {
	doc.FindAll("a", "href", telHrefPattern).Each(func(_ int, a *goquery.Selection) {
		number := telNumber(a.AttrOr("href", ""))
		if number == "" {
			return
		}

		label := firstNonEmpty(
			func() string { return telContext(a) },
			attrOf(a, "title"),
			attrOf(a, "aria-label"),
			literal(webgrab.DefaultPhoneLabel),
		)
		phones.add(number, label)
	})
}

// telNumber returns the number part of a tel: href.
func telNumber(href string) string {
	href = strings.TrimSpace(href)
	number := strings.TrimSpace(href[len("tel:"):])
	if unescaped, err := url.PathUnescape(number); err == nil {
		number = strings.TrimSpace(unescaped)
	}
	return number
}

// telContext finds a label such as "Sales" in "Sales: +1 555-123-4567",
// where the number is the anchor's visible text.
func telContext(a *goquery.Selection) string {
	visible := flatText(a, "")
	if visible == "" {
		return ""
	}

	parent := a.ParentsFiltered(phoneContextSelector).First()
	if parent.Length() == 0 {
		return ""
	}

	re, err := regexp.Compile(`([A-Za-z\s]+?)\s*:?\s*` + regexp.QuoteMeta(visible))
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(flatText(parent, " "))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// collectLabeledPhones adds numbers that follow a keyword such as "Phone:"
// or "Fax" in the text of the keyword's enclosing element.
func collectLabeledPhones(doc *Document, phones *phoneSet) {
	title := cases.Title(language.English)

	var matched int
	for _, n := range textNodeList(doc.doc.Nodes...) {
		if matched >= maxLabeledMatches || phones.full() {
			return
		}
		if !phoneKeywordPattern.MatchString(n.Data) {
			continue
		}
		matched++

		parent := n.Parent
		if parent == nil || parent.Type != html.ElementNode {
			continue
		}

		m := labeledPhonePattern.FindStringSubmatch(flatNodes(" ", parent))
		if m == nil {
			continue
		}
		number := strings.TrimSpace(m[2])
		if len(NormalizePhone(number)) < minPhoneLength {
			continue
		}
		phones.add(number, title.String(strings.TrimSpace(m[1])))
	}
}

// extractAddress returns the text of the first element whose class looks like
// an address or contact block, truncated to webgrab.MaxAddressLength.
func extractAddress(doc *Document) string {
	sel := doc.FindAll("*", "class", addressClassPattern).First()
	if sel.Length() == 0 {
		return ""
	}
	return truncate(flatText(sel, " "), webgrab.MaxAddressLength)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
