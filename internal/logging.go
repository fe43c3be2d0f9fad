package internal

import (
	"io"
	"log/slog"
)

// NewLogger builds the structured logger described by cfg. Output goes
// to w; the CLI passes stderr so stdout stays reserved for results.
func NewLogger(cfg ApplicationConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
