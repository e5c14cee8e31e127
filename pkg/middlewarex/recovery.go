package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"lead_qualifier/pkg/httpx/reply"
	"lead_qualifier/pkg/logx"
)

// Recovery turns a handler panic into a 500 response with the trace id as
// support id.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, fmt.Errorf("recovered panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
