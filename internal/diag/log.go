// Package diag provides the pipeline's fatal-error and warning logging,
// writing structured records to stderr. No third-party logger appears
// anywhere in the retrieved corpus, so this stays on log/slog.
package diag

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Fatalf logs a fatal condition (a Start failure, a clip overflow) and
// exits the process with status 1. No package in the module calls it:
// Start and the pipeline return their errors to the caller instead.
func Fatalf(msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}

// Warnf logs a non-fatal condition, such as a missing diffuse texture
// or an external buffer a loader chose to skip.
func Warnf(msg string, args ...any) {
	logger.Warn(msg, args...)
}
