// Package middleware contains HTTP middleware for the marketing relay.
package middleware

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/marketmind-relay/internal/api/shared"
	"github.com/phrazzld/marketmind-relay/internal/platform/logger"
)

// Trace returns middleware that assigns a trace ID to each request, echoes it
// in the X-Trace-ID response header and stores a request-scoped logger
// carrying it in the context. base may be nil to use slog.Default().
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)
			w.Header().Set(shared.TraceIDHeader, traceID)

			l := base
			if l == nil {
				l = slog.Default()
			}
			attrs := []any{slog.String("trace_id", traceID)}
			if reqID := chimw.GetReqID(ctx); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}
			l = l.With(attrs...)

			l.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, l)))
		})
	}
}
