// Package context carries request-scoped values (request ID, logger) across
// the delivery and use case layers without leaking echo types downward.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ctxKey keeps this package's context values from colliding with other
// packages' keys.
type ctxKey string

const (
	keyRequestID ctxKey = "request_id"
	keyLogger    ctxKey = "logger"

	// HeaderXRequestID is the header the request ID is read from and echoed
	// back on.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request ID on the echo context for handlers that
// never leave the delivery layer.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "" when the request
// never passed through the request ID middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithRequestID attaches the request ID to ctx for the layers below delivery.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger attaches a request-scoped logger to ctx. Use case services pull
// it back out so every log line of one request shares the same request_id.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil when ctx carries none.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// given service-level logger outside a request (jobs, startup).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
