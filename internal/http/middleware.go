package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLoggerMiddleware logs every request with a generated request ID
func RequestLoggerMiddleware(log Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		start := time.Now()

		c.Set("requestID", requestID)
		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]interface{}{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    statusCode,
			"latency":   time.Since(start).String(),
			"requestID": requestID,
			"clientIP":  c.ClientIP(),
		}

		switch {
		case statusCode >= 500:
			log.LogWarn("Server error processing request", fields)
		case statusCode >= 400:
			log.LogWarn("Client error processing request", fields)
		default:
			log.LogInfo("Request completed", fields)
		}
	}
}
