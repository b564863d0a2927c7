package workshopsync

import (
	"context"
	"log/slog"
	"os/exec"

	"github.com/frantjc/workshopsync/internal/logutil"
)

// WithLogger returns a Context from the parent Context
// with the given Logger inside of it.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return logutil.SloggerInto(ctx, log)
}

// LoggerFrom returns a Logger embedded within the given Context
// or a no-op Logger if no such Logger exists.
func LoggerFrom(ctx context.Context) *slog.Logger {
	return logutil.SloggerFrom(ctx)
}

// LogExec redirects a command's stdout and stderr
// to the Logger in the given Context.
func LogExec(ctx context.Context, cmd *exec.Cmd) {
	log := LoggerFrom(ctx).With("bin", cmd.Path)

	cmd.Stdout = &logutil.LogWriter{Logger: log, Level: slog.LevelInfo}
	cmd.Stderr = &logutil.LogWriter{Logger: log, Level: slog.LevelWarn}
}
