package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

var global = zap.NewNop().Sugar()

// Init replaces the package logger. Call once from main before anything
// logs; everything before Init goes to a nop logger.
func Init(level string) error {
	cfg := zap.NewProductionConfig()

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg.Level = lvl

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = l.Sugar()
	return nil
}

// WithRequestID stamps a request id onto the context so every log line
// emitted while handling that request carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
			return global.With("request_id", id)
		}
	}
	return global
}

func Info(ctx context.Context, msg string) {
	fromCtx(ctx).Info(msg)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromCtx(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, err error) {
	fromCtx(ctx).Fatal(err)
}
