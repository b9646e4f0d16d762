package mock

import (
	"context"

	"github.com/fwojciec/webgrab"
)

var _ webgrab.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of webgrab.Archiver.
type Archiver struct {
	ArchiveFn func(ctx context.Context, images []webgrab.ImageRef, kinds ...webgrab.ImageKind) (*webgrab.Archive, error)
}

func (a *Archiver) Archive(ctx context.Context, images []webgrab.ImageRef, kinds ...webgrab.ImageKind) (*webgrab.Archive, error) {
	return a.ArchiveFn(ctx, images, kinds...)
}
