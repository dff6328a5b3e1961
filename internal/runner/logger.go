// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with hypervolume-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler logs text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger writing human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("runner: log level %q: %w", name, err)
	}

	return l, nil
}

// WithRun tags every record with the run id.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run", id)}
}

// LogFront logs one computed front.
func (l *Logger) LogFront(ctx context.Context, index, points, objectives int, hv float64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "front failed",
			"front", index,
			"points", points,
			"objectives", objectives,
			"error", err,
		)

		return
	}
	l.DebugContext(ctx, "front computed",
		"front", index,
		"points", points,
		"objectives", objectives,
		"hv", hv,
		"elapsed", elapsed,
	)
}

// LogRun logs the summary of a run.
func (l *Logger) LogRun(ctx context.Context, fronts int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed", "fronts", fronts, "elapsed", elapsed, "error", err)

		return
	}
	l.InfoContext(ctx, "run completed", "fronts", fronts, "elapsed", elapsed)
}
