// Package ignore holds the exclusion rules applied during traversal
package ignore

import (
	"regexp"

	"github.com/halvick/dir-digest/internal/utils"
)

// rule is a single exclusion pattern. The raw string is always eligible
// for exact and prefix matching; re is the pattern compiled as a regular
// expression, or nil when the string does not compile as one.
type rule struct {
	raw string
	re  *regexp.Regexp
}

// RuleSet answers whether a root-relative path is excluded. Patterns are
// ordered: ignore-file patterns first, then caller-supplied ones. A RuleSet
// is immutable after New returns.
type RuleSet struct {
	rootDir string
	rules   []rule
	logger  utils.Logger

	patterns []string // caller-supplied, appended after the ignore file's
}
