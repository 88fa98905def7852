package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movie-booking-api/internal/auth"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func contextSetClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

// contextGetClaims returns nil for anonymous requests.
func contextGetClaims(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(claimsContextKey).(*auth.Claims)
	if !ok {
		return nil
	}

	return claims
}

// contextGetLogger returns the application logger tagged with the request
// id, the trace id and the caller when they are known.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger

	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	if spanCtx := trace.SpanContextFromContext(r.Context()); spanCtx.HasTraceID() {
		logger = logger.With("trace_id", spanCtx.TraceID().String())
	}

	if claims := contextGetClaims(r); claims != nil {
		logger = logger.With("user_id", claims.UserID)
	}

	return logger
}
