// Package fs derives output paths and persists repaired content.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// FixedPath derives the sibling output path by inserting a "_fixed" suffix
// before the extension: data.json becomes data_fixed.json. The source file
// itself is never a write target.
func FixedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_fixed" + ext
}

// WriteFixed writes content to the fixed sibling of path and returns the
// path written. An existing fixed file is overwritten without warning.
func WriteFixed(path, content string) (string, error) {
	out := FixedPath(path)
	if err := os.WriteFile(out, []byte(content), 0644); err != nil {
		return "", err
	}
	return out, nil
}
