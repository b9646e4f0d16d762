package webgrab

// Extractor turns a fetched page into structured business information.
type Extractor interface {
	// Extract parses the response body and runs every analyzer over it.
	// Returns EPARSE if the body cannot be parsed. Sparse pages are not
	// an error: absent fields are simply empty.
	Extract(resp *Response) (*ExtractionResult, error)

	// CollectImages parses the response body and returns only the image
	// references, favicons first.
	CollectImages(resp *Response) ([]ImageRef, error)
}
