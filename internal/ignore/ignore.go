package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/halvick/dir-digest/internal/utils"
)

// IgnoreFileName is the rule file read from the traversal root.
const IgnoreFileName = ".gitignore"

// New creates a RuleSet for rootDir. Patterns come from an optional
// ignore file at <rootDir>/.gitignore followed by any caller-supplied
// patterns (see WithPatterns). A missing ignore file contributes nothing.
func New(rootDir string, opts ...Option) (*RuleSet, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	rs := &RuleSet{
		rootDir: absRootDir,
		logger:  &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(rs)
	}

	if err := rs.init(); err != nil {
		return nil, err
	}

	return rs, nil
}

// init loads the ignore file and compiles every pattern once.
func (rs *RuleSet) init() error {
	ignorePath := filepath.Join(rs.rootDir, IgnoreFileName)
	content, err := os.ReadFile(ignorePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("ignore: failed to read '%s': %w", ignorePath, err)
		}
		rs.logger.Debug("ignore.New: No %s in %s, continuing without file rules", IgnoreFileName, rs.rootDir)
	}

	for _, pattern := range parseIgnoreFile(string(content)) {
		rs.add(pattern)
	}

	// Caller patterns go last, untransformed.
	for _, pattern := range rs.patterns {
		rs.add(pattern)
	}

	rs.logger.Debug("ignore.New: Loaded %d patterns for root %s", len(rs.rules), rs.rootDir)
	return nil
}

// add appends one pattern, caching its compiled form. A string that fails
// to compile as a regular expression stays eligible for exact and prefix
// matching; only its regexp check is disabled.
func (rs *RuleSet) add(pattern string) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		rs.logger.Debug("ignore: pattern %q is not a valid regexp, keeping literal checks only", pattern)
		re = nil
	}
	rs.rules = append(rs.rules, rule{raw: pattern, re: re})
}

// parseIgnoreFile splits ignore-file content into patterns. Blank lines and
// comment lines are dropped, and a single leading '/' is stripped so that
// root-anchored entries match as plain prefixes.
func parseIgnoreFile(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "/") {
			line = line[1:]
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// Patterns returns the raw pattern strings in evaluation order.
func (rs *RuleSet) Patterns() []string {
	out := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.raw
	}
	return out
}
