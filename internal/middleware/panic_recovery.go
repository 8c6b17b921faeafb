package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"finance-ledger/internal/errors"
	"finance-ledger/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response and logs
// the panic value with its stack. Nothing is written if the handler had
// already started the response.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				logger.ErrorContext(req.Context(), "panic recovered",
					slog.String("trace_id", GetTraceID(c)),
					slog.String("panic", fmt.Sprint(r)),
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
