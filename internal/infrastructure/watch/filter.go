package watch

import (
	"path/filepath"
	"strings"
)

// SyncFilter accepts the paths a sync run depends on: the spec document
// itself and source files with the configured extension. Everything else,
// including the README and architecture files the sync itself rewrites, is
// ignored.
func SyncFilter(specFile, sourceExt string) func(string) bool {
	specBase := filepath.Base(specFile)
	return func(path string) bool {
		base := filepath.Base(path)
		if base == specBase {
			return true
		}
		return strings.HasSuffix(base, sourceExt)
	}
}
