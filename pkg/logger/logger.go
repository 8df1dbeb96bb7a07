// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns the per-request logger injected by the Logger middleware,
// so every line a handler writes is tagged with its request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", o.ID)
//	// → time=... level=INFO msg="order created" request_id=3f0c... order_id=12
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var base atomic.Pointer[slog.Logger]

func init() {
	base.Store(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// Setup installs the handler for env: JSON at INFO in production, text at
// DEBUG elsewhere. Extra handlers (the Mongo sink) receive every record too.
func Setup(env string, w io.Writer, extra ...slog.Handler) *slog.Logger {
	var h slog.Handler
	switch env {
	case "production", "prod":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	if len(extra) > 0 {
		h = NewMultiHandler(append([]slog.Handler{h}, extra...)...)
	}
	l := slog.New(h)
	base.Store(l)
	slog.SetDefault(l)
	return l
}

// L returns the process-wide logger.
func L() *slog.Logger { return base.Load() }

type ctxKey struct{}

// WithCtx returns the logger stored in ctx by InjectLogger, or the base
// logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L()
}

// InjectLogger stores log in ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// LevelFor picks the access-log level for an HTTP status.
func LevelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }

func Info(msg string, args ...any) { L().Info(msg, args...) }

func Warn(msg string, args ...any) { L().Warn(msg, args...) }

func Error(msg string, args ...any) { L().Error(msg, args...) }
