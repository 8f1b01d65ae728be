package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
	runIDKey
)

// WithLogger stores a logger in the context. A nil logger stores the
// package default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the package default.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithRunID stores the generation run id in the context and stamps it onto
// the context logger.
func WithRunID(ctx context.Context, runID string) context.Context {
	ctx = context.WithValue(ctx, runIDKey, runID)
	return WithField(ctx, "run_id", runID)
}

// RunID returns the generation run id stored in ctx, or "".
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// WithStrategy stamps the generation strategy onto the context logger.
func WithStrategy(ctx context.Context, strategy string) context.Context {
	return WithField(ctx, "strategy", strategy)
}

// WithBatch stamps the batch number onto the context logger.
func WithBatch(ctx context.Context, batch int) context.Context {
	return WithField(ctx, "batch", batch)
}

// WithOperation stamps the pipeline operation onto the context logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// WithField derives a context logger carrying one extra field.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := typedField(FromContext(ctx).With(), key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithFields derives a context logger carrying the given fields.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logCtx := FromContext(ctx).With()
	for key, value := range fields {
		logCtx = typedField(logCtx, key, value)
	}
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}

// typedField attaches value under its native zerolog type where one exists.
func typedField(logCtx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return logCtx.Str(key, v)
	case int:
		return logCtx.Int(key, v)
	case int64:
		return logCtx.Int64(key, v)
	case float64:
		return logCtx.Float64(key, v)
	case bool:
		return logCtx.Bool(key, v)
	case error:
		return logCtx.AnErr(key, v)
	default:
		return logCtx.Interface(key, v)
	}
}
