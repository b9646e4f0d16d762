package mock

import "github.com/fwojciec/webgrab"

var _ webgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webgrab.Extractor.
type Extractor struct {
	ExtractFn       func(resp *webgrab.Response) (*webgrab.ExtractionResult, error)
	CollectImagesFn func(resp *webgrab.Response) ([]webgrab.ImageRef, error)
}

func (e *Extractor) Extract(resp *webgrab.Response) (*webgrab.ExtractionResult, error) {
	return e.ExtractFn(resp)
}

func (e *Extractor) CollectImages(resp *webgrab.Response) ([]webgrab.ImageRef, error) {
	return e.CollectImagesFn(resp)
}
