package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewCLI builds the logger the console binaries use: tinted, short
// timestamps, debug level when verbose. The TUI redirects it to a file
// so log lines do not fight with the rendered view.
func NewCLI(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}
