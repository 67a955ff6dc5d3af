package middleware

import (
	"log/slog"
	"time"

	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/gin-gonic/gin"
)

// Logging puts a request scoped logger into the context and writes one record per request.
func Logging(l *slog.Logger) gin.HandlerFunc {
	if l == nil {
		l = slog.Default()
	}
	return func(c *gin.Context) {
		reqLogger := l
		if rid := c.GetHeader(RequestIDHeader); rid != "" {
			reqLogger = reqLogger.With(slog.String("request_id", rid))
		}
		c.Request = c.Request.WithContext(log.Into(c.Request.Context(), reqLogger))

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		// read back from the context so attributes added downstream are kept
		ctx := c.Request.Context()
		log.From(ctx).LogAttrs(ctx, level, "http",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("dur", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}
