package logutil

import (
	"context"
	"log/slog"

	"github.com/go-logr/logr"
)

// SloggerInto returns a Context from the parent Context
// with the given *slog.Logger inside of it.
func SloggerInto(ctx context.Context, log *slog.Logger) context.Context {
	return logr.NewContextWithSlogLogger(ctx, log)
}

// SloggerFrom returns the *slog.Logger in the context
// or a no-op *slog.Logger if no such logger exists.
func SloggerFrom(ctx context.Context) *slog.Logger {
	if log := logr.FromContextAsSlogLogger(ctx); log != nil {
		return log
	}

	return slog.New(logr.ToSlogHandler(logr.Discard()))
}
