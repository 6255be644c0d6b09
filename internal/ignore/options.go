package ignore

import "github.com/halvick/dir-digest/internal/utils"

// Option functions for configuration
type Option func(*RuleSet)

// WithPatterns appends caller-supplied patterns after the ignore file's.
// They are stored as given, with no transformation.
func WithPatterns(patterns []string) Option {
	return func(rs *RuleSet) {
		rs.patterns = patterns
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(rs *RuleSet) {
		if logger != nil {
			rs.logger = logger
		}
	}
}
