package ignore

import "strings"

// Matches reports whether relativePath is excluded by any pattern in the
// set. A pattern matches when it equals the path, when the path starts
// with it, or when it matches the path as a regular expression. The result
// is a plain OR over the patterns, so evaluation order never changes it.
func (rs *RuleSet) Matches(relativePath string) bool {
	if rs == nil {
		return false
	}

	// Never exclude the root itself.
	if relativePath == "" || relativePath == "." {
		return false
	}

	for _, r := range rs.rules {
		if relativePath == r.raw || strings.HasPrefix(relativePath, r.raw) {
			rs.logger.Debug("ignore.Matches: %q excluded by pattern %q (literal)", relativePath, r.raw)
			return true
		}
		if r.re != nil && r.re.MatchString(relativePath) {
			rs.logger.Debug("ignore.Matches: %q excluded by pattern %q (regexp)", relativePath, r.raw)
			return true
		}
	}
	return false
}
