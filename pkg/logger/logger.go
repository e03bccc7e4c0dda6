// Package logger holds the process-wide structured logger used across the
// profile service.
package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init configures Log with a JSON handler on stdout. Debug level stays on
// so request and rate-limit diagnostics are always captured.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
