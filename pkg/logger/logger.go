// Package logger provides the structured, levelled logger for Ordertrack,
// built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// request ID already attached, so every log line from a handler is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order saved", "order_id", order.ID)
//	// → time=... level=INFO msg="order saved" request_id=a1b2c3d4 order_id=17
//
// When MONGO_URI is configured, log records are additionally shipped to a
// MongoDB collection through the asynchronous handler in mongo_handler.go.
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/ordertrack/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// EnableMongoSink tees every log record into MongoDB. Called once at boot
// when MONGO_URI is configured; returns the handler so the caller can
// Close() it on shutdown.
func EnableMongoSink(uri, db, collection string) (*MongoHandler, error) {
	mh, err := NewMongoHandler(L.Handler(), uri, db, collection)
	if err != nil {
		return nil, err
	}

	L = slog.New(mh)
	slog.SetDefault(L)
	return mh, nil
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger injected by the request middleware,
// pre-tagged with the request_id. Falls back to the base logger when no
// per-request logger is present (CLI commands, tests).
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
