// Package mediaid derives stable identifiers for media files.
//
// The identifier is computed from the file's name, byte size and modification
// time, so the annotation store needs no separate media registry. Renaming,
// rewriting or touching the file changes its identity; that is an accepted
// trade-off for keeping the store self-contained.
package mediaid

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FromFile computes the media identity for the file at the given path.
func FromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat media file: %w", err)
	}
	return FromInfo(filepath.Base(path), info), nil
}

// FromInfo computes the media identity from already-collected file metadata.
func FromInfo(name string, info fs.FileInfo) string {
	return fmt.Sprintf("%s_%d_%d", name, info.Size(), info.ModTime().Unix())
}
