package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestID = "requestID"
	headerRequestID  = "X-Request-ID"

	slowRequest = 500 * time.Millisecond
)

// RequestLogger tags each request with an id and logs it once finished.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()

		latency := time.Since(start)
		attrs := []any{
			slog.String("request_id", id),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
			slog.String("client_ip", c.ClientIP()),
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", attrs...)
		case latency > slowRequest:
			log.Warn("slow request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}
