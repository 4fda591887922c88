package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogging installs the process-wide slog handler per LOG_LEVEL and
// JSON_LOG.
func SetupLogging(s *Settings) {
	level := slog.LevelInfo
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if s.JSONLog {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
