// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logger := logging.NewLogger(slog.LevelInfo)
//
// The returned logger is handed to components explicitly rather than
// installed as the process-wide default, so components never share
// hidden logging state.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds a colored slog.Logger writing to stderr at the given
// level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	)
}
