package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/myenglish-dictation/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 JSON error and logs it with the
// stack, the request id and, behind Auth, the user id. http.ErrAbortHandler
// is re-raised so net/http can abort the response silently.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				}
				if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
					attrs = append(attrs, slog.String("user_id", userID.String()))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
