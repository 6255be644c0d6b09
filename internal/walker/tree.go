package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/halvick/dir-digest/internal/ignore"
)

// indentUnit is prepended once per depth level in the tree rendering.
// The "  - name" line format is a de facto output contract; consumers
// parse it, so it must not change.
const indentUnit = "  "

// GenerateTree renders dir and everything below it as an indented list,
// one line per surviving entry, with a directory's children immediately
// following its own line at depth+1. Filtering is identical to ListFiles:
// hidden entries and rule matches are absent, and excluded directories are
// never entered.
func GenerateTree(dir string, depth int, rootDir string, rules *ignore.RuleSet, opts ...Option) (string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return generateTree(dir, depth, rootDir, rules, options)
}

func generateTree(dir string, depth int, rootDir string, rules *ignore.RuleSet, options WalkOptions) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("walker: failed to read directory '%s': %w", dir, err)
	}

	var tree strings.Builder
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		relativePath, skip, err := classify(path, entry.Name(), rootDir, rules, options)
		if err != nil {
			return "", err
		}
		if skip {
			continue
		}

		tree.WriteString(strings.Repeat(indentUnit, depth))
		tree.WriteString("- ")
		tree.WriteString(entry.Name())
		tree.WriteString("\n")

		if entry.IsDir() {
			options.Logger.Debug("walker: Rendering subtree of %q at depth %d", relativePath, depth+1)
			sub, err := generateTree(path, depth+1, rootDir, rules, options)
			if err != nil {
				return "", err
			}
			tree.WriteString(sub)
		}
	}
	return tree.String(), nil
}
