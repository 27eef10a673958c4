package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger реализует Logger поверх zap.SugaredLogger.
type ZapLogger struct {
	log *zap.SugaredLogger
}

func NewZapLogger(level string) (*ZapLogger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{"stdout"}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	l, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{log: l.Sugar()}, nil
}

func (l *ZapLogger) Debugf(format string, args ...any) {
	l.log.Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *ZapLogger) Errorf(err error, format string, args ...any) {
	l.log.With(zap.Error(err)).Errorf(format, args...)
}

// Sync сбрасывает буферы zap.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}
