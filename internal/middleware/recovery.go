package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/samtimberlan/wishop/internal/pkg"
)

// Recovery returns a gin middleware that recovers from panics, logs the error
// with a stack trace using slog, and returns a 500 failure envelope. It
// replaces gin.Recovery() so panics produce the same response contract as
// every other failure.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				c.Abort()
				pkg.Write(c, pkg.FailureStatus("internal server error", http.StatusInternalServerError))
			}
		}()
		c.Next()
	}
}
