package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

type contextKey string

const LoggerKey contextKey = "logger"

// RequestIDHeader carries the id given to each request; an incoming value is kept.
const RequestIDHeader = "X-Request-Id"

// LoggerFrom extracts the request-scoped logger from the request context.
func LoggerFrom(r *http.Request, fallback *zap.Logger) *zap.Logger {
	if val, ok := r.Context().Value(LoggerKey).(*zap.Logger); ok && val != nil {
		return val
	}
	return fallback
}

// RequestLogger tags every request with an id, stores a logger carrying that
// id in the request context and logs the request once the chain returns.
func RequestLogger(logger *zap.Logger) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		requestID := e.Request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		e.Response.Header().Set(RequestIDHeader, requestID)

		reqLogger := logger.With(zap.String("request_id", requestID))
		ctx := context.WithValue(e.Request.Context(), LoggerKey, reqLogger)
		e.Request = e.Request.WithContext(ctx)

		start := time.Now()
		err := e.Next()

		fields := []zap.Field{
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			reqLogger.Warn("request failed", append(fields, zap.Error(err))...)
			return err
		}
		reqLogger.Debug("request handled", fields...)
		return nil
	}
}
