// Package walker handles directory traversal
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/halvick/dir-digest/internal/ignore"
)

// ListFiles traverses dir depth-first and returns the root-relative paths
// of every file that survives filtering, in traversal order. Directories
// are never listed; an excluded or hidden directory is not entered, so its
// whole subtree is absent from the result. Any filesystem error aborts the
// traversal.
func ListFiles(dir, rootDir string, rules *ignore.RuleSet, opts ...Option) ([]string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return listFiles(dir, rootDir, rules, options)
}

func listFiles(dir, rootDir string, rules *ignore.RuleSet, options WalkOptions) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to read directory '%s': %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		relativePath, skip, err := classify(path, entry.Name(), rootDir, rules, options)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}

		if entry.IsDir() {
			options.Logger.Debug("walker: Descending into directory %q", relativePath)
			sub, err := listFiles(path, rootDir, rules, options)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		} else {
			files = append(files, relativePath)
		}
	}
	return files, nil
}

// classify applies the shared filtering: hidden entries first, then the
// rule set on the slash-normalized relative path. Both traversals go
// through it so the listing and the tree always agree.
func classify(path, name, rootDir string, rules *ignore.RuleSet, options WalkOptions) (relativePath string, skip bool, err error) {
	// Hidden entries are suppressed before any rule is consulted.
	if strings.HasPrefix(name, ".") {
		options.Logger.Debug("walker: Skipping hidden entry %q", name)
		return "", true, nil
	}

	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		return "", false, fmt.Errorf("walker: failed to compute relative path for '%s': %w", path, err)
	}
	relativePath = filepath.ToSlash(rel)

	if rules.Matches(relativePath) {
		options.Logger.Debug("walker: Skipping %q by ignore rules", relativePath)
		return relativePath, true, nil
	}
	return relativePath, false, nil
}
