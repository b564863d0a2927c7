package logutil

import (
	"bytes"
	"context"
	"log/slog"
)

// LogWriter is an io.Writer that logs each
// non-empty line written to it at Level.
type LogWriter struct {
	*slog.Logger
	Level slog.Level
}

func (w *LogWriter) Write(p []byte) (n int, err error) {
	for _, line := range bytes.Split(p, []byte("\n")) {
		if line = bytes.TrimSpace(line); len(line) > 0 {
			w.Log(context.Background(), w.Level, string(line))
		}
	}

	return len(p), nil
}
