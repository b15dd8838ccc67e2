package app

import (
	"log/slog"
	"os"
	"strings"

	"service-dispatch/internal/config"
	"service-dispatch/internal/logx"
)

// NewLogger writes JSON lines to stdout at cfg.LogLevel.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, parseLevel(cfg.LogLevel)).
		With(logx.String("service", "service-dispatch"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
