// Package summary handles display of run results
package summary

import (
	"time"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a digest run
func DisplayResults(
	logger Logger,
	listedFiles int,
	dumpedFiles int64,
	duration time.Duration,
	quiet bool,
) {
	if quiet {
		return
	}
	logger.Info("Listed %d files, dumped contents of %d.", listedFiles, dumpedFiles)
	logger.Info("Digest complete in %v.", duration.Round(time.Millisecond))
}
