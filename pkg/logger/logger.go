// Package logger описывает интерфейс логгера приложения и его реализации поверх slog и zap.
package logger

import (
	"os"
	"strings"
)

// Logger — общий интерфейс логирования для всех слоёв приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// FromEnv выбирает реализацию по LOG_BACKEND (slog по умолчанию) и уровень по LOG_LEVEL.
func FromEnv() Logger {
	level := strings.ToLower(os.Getenv("LOG_LEVEL"))

	switch strings.ToLower(os.Getenv("LOG_BACKEND")) {
	case BackendZap:
		log, err := NewZapLogger(level)
		if err == nil {
			return log
		}
		fallback := NewSlogLogger(level)
		fallback.Errorf(err, "failed to build zap logger, falling back to slog")
		return fallback
	default:
		return NewSlogLogger(level)
	}
}
