// Package walker handles directory traversal
package walker

import (
	"github.com/halvick/dir-digest/internal/utils"
)

// WalkOptions configures a traversal
type WalkOptions struct {
	Logger utils.Logger
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: &utils.NoopLogger{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}
