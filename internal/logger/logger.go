package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns the process wide logger. Output is one JSON object per
// line on stdout, info level and above.
func New() *slog.Logger {
	return slog.New(newHandler(os.Stdout))
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}
