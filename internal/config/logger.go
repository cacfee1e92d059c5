package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLogLevel は設定のログレベル文字列を slog.Level に変換します。不明な値は Info。
func ParseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// NewLogger は APP_ENV=dev なら tint、それ以外は JSON のロガーを作ります。
func NewLogger(w io.Writer, appEnv string, level slog.Leveler) *slog.Logger {
	var handler slog.Handler
	if strings.EqualFold(appEnv, "dev") {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339, // 2025-06-04T02:05:41+09:00
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
