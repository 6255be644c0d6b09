package walker

import (
	"path/filepath"
	"strings"
)

// ExtensionSet filters files by extension when their content is emitted.
// It never affects listing or tree output. Extensions are stored
// lowercased without the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet from raw extension strings,
// normalizing case and dots and dropping empties. A nil or empty input
// yields a set that allows everything.
func NewExtensionSet(extensions []string) ExtensionSet {
	set := make(ExtensionSet, len(extensions))
	for _, ext := range extensions {
		clean := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		if clean != "" {
			set[clean] = struct{}{}
		}
	}
	return set
}

// Allows reports whether the file at relativePath passes the filter.
// An empty set allows every file; a file without an extension only passes
// an empty set.
func (s ExtensionSet) Allows(relativePath string) bool {
	if len(s) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(relativePath), "."))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}

// List returns the extensions in the set, dot-prefixed, for log messages.
func (s ExtensionSet) List() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, "."+ext)
	}
	return out
}
