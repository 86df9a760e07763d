package logging

import (
	"context"

	"go.uber.org/zap"
)

var (
	defaultLogger *zap.SugaredLogger
)

type key string

const loggerKey key = "logger"

type Logger struct {
	Zap *zap.Logger
}

func New() *Logger {
	zapLogger, _ := zap.NewProduction()

	logger := &Logger{Zap: zapLogger}

	defaultLogger = zapLogger.With(
		zap.String("logger", "defaultLogger"),
	).WithOptions(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zap.DebugLevel),
	).Sugar()

	return logger
}

// WithContext puts a request-scoped sugared logger into ctx.
func (l *Logger) WithContext(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, loggerKey, l.Zap.With(zap.String("logger", name)).Sugar())
}

// Sl returns the logger stored in ctx, falling back to the default one.
func Sl(ctx context.Context) *zap.SugaredLogger {
	if sl, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return sl
	}
	if defaultLogger == nil {
		New()
	}
	return defaultLogger
}
