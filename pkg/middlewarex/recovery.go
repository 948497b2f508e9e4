package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"hsc_predictor/pkg/logx"
)

// Recovery turns a panic in a handler into a plain text 500 so the form
// always shows a message instead of a dropped connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
					panic(rec)
				}

				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				http.Error(w, "❌ Internal error, please try again.", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
