package api

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	remoteAddrKey contextKey = "remote_addr"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithRemoteAddr adds the caller address to the context.
func WithRemoteAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, remoteAddrKey, addr)
}

// RequestID retrieves the request ID from context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextLogger returns a logger annotated with request information from
// ctx.
func ContextLogger(ctx context.Context, base *zap.Logger) *zap.Logger {
	logger := base

	if id, ok := ctx.Value(requestIDKey).(string); ok {
		logger = logger.With(zap.String("request_id", id))
	}

	if addr, ok := ctx.Value(remoteAddrKey).(string); ok {
		logger = logger.With(zap.String("remote_addr", addr))
	}

	return logger
}
