package webgrab

import "context"

// Archive is a finished zip archive of downloaded images.
type Archive struct {
	Data []byte

	// Entries lists entry names in archive order.
	Entries []string

	// Failed counts selected images that could not be downloaded.
	Failed int
}

// Archiver downloads images and packages them into a single archive.
type Archiver interface {
	// Archive downloads the images whose kind is in kinds (all images when
	// kinds is empty) and returns them as one archive. A failed download
	// only omits that image; an archive with zero entries is not an error.
	Archive(ctx context.Context, images []ImageRef, kinds ...ImageKind) (*Archive, error)
}

// FilterImages returns the images whose kind is in kinds.
// All images are returned when kinds is empty.
func FilterImages(images []ImageRef, kinds ...ImageKind) []ImageRef {
	if len(kinds) == 0 {
		return images
	}
	var out []ImageRef
	for _, img := range images {
		if HasKind(kinds, img.Kind) {
			out = append(out, img)
		}
	}
	return out
}

// HasKind reports whether kind is in kinds. An empty kinds matches everything.
func HasKind(kinds []ImageKind, kind ImageKind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
