package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID tags every request and response with a generated id so log lines
// from one request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"remote_ip": c.ClientIP(),
		})
		if requestID := c.GetString("requestID"); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}

		entry.Info("Request received")
		c.Next()

		entry.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(startTime).Milliseconds(),
		}).Info("Request completed")
	}
}
