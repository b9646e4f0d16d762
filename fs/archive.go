// Package fs writes finished archives to disk.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteArchive writes data to path atomically. The bytes are written to
// path.tmp in the same directory, then renamed over path, so an interrupted
// write never leaves a truncated archive behind.
func WriteArchive(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
