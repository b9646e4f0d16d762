package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webgrab"
)

// Ensure LoggingArchiver implements webgrab.Archiver.
var _ webgrab.Archiver = (*LoggingArchiver)(nil)

// LoggingArchiver wraps an Archiver with logging.
type LoggingArchiver struct {
	next   webgrab.Archiver
	logger *slog.Logger
}

// NewLoggingArchiver creates a new LoggingArchiver.
func NewLoggingArchiver(next webgrab.Archiver, logger *slog.Logger) *LoggingArchiver {
	return &LoggingArchiver{next: next, logger: logger}
}

// Archive delegates to the wrapped archiver and logs the outcome.
func (a *LoggingArchiver) Archive(ctx context.Context, images []webgrab.ImageRef, kinds ...webgrab.ImageKind) (archive *webgrab.Archive, err error) {
	defer func(begin time.Time) {
		var entries, failed, size int
		if archive != nil {
			entries, failed, size = len(archive.Entries), archive.Failed, len(archive.Data)
		}
		a.logger.Info("archive",
			"images", len(images),
			"kinds", kinds,
			"entries", entries,
			"failed", failed,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Archive(ctx, images, kinds...)
}
