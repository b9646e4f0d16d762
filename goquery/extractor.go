package goquery

import (
	"bytes"

	"github.com/fwojciec/webgrab"
)

// Ensure Extractor implements webgrab.Extractor at compile time.
var _ webgrab.Extractor = (*Extractor)(nil)

// Extractor parses fetched pages and runs the analyzers over them.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the response body and extracts everything from it.
func (e *Extractor) Extract(resp *webgrab.Response) (*webgrab.ExtractionResult, error) {
	doc, err := parseResponse(resp)
	if err != nil {
		return nil, err
	}
	return ExtractDocument(doc), nil
}

// CollectImages parses the response body and returns its image references.
func (e *Extractor) CollectImages(resp *webgrab.Response) ([]webgrab.ImageRef, error) {
	doc, err := parseResponse(resp)
	if err != nil {
		return nil, err
	}
	return CollectImages(doc), nil
}

// ExtractDocument runs every analyzer over a parsed document. The analyzers
// share no state, so the result depends only on the document.
func ExtractDocument(doc *Document) *webgrab.ExtractionResult {
	return &webgrab.ExtractionResult{
		URL:         doc.BaseURL(),
		ContentHash: doc.Hash(),
		Company:     ExtractCompany(doc),
		Contact:     ExtractContact(doc, doc.Text()),
		Social:      ExtractSocial(doc),
		Images:      CollectImages(doc),
	}
}

func parseResponse(resp *webgrab.Response) (*Document, error) {
	if resp == nil {
		return nil, webgrab.Errorf(webgrab.EINVALID, "nil response")
	}
	return Parse(bytes.NewReader(resp.Body), resp.ContentType, resp.URL)
}
