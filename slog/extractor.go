package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webgrab"
)

// Ensure LoggingExtractor implements webgrab.Extractor.
var _ webgrab.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   webgrab.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webgrab.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(resp *webgrab.Response) (result *webgrab.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", responseURL(resp)}
		if result != nil {
			attrs = append(attrs,
				"emails", len(result.Contact.Emails),
				"phones", len(result.Contact.Phones),
				"social", len(result.Social.Found()),
				"images", result.ImageCount(),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(resp)
}

// CollectImages delegates to the wrapped extractor and logs the image count.
func (e *LoggingExtractor) CollectImages(resp *webgrab.Response) (images []webgrab.ImageRef, err error) {
	defer func(begin time.Time) {
		e.logger.Info("collect images",
			"url", responseURL(resp),
			"count", len(images),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.CollectImages(resp)
}

func responseURL(resp *webgrab.Response) string {
	if resp == nil {
		return ""
	}
	return resp.URL
}
