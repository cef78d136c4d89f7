package middleware

import (
	"net/http"
	"time"

	"btl-run-api/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store request ID in context
const RequestIDKey = "request_id"

// CORS middleware attaches the fixed response headers and short-circuits
// preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		for key, value := range lambda.DefaultHeaders() {
			c.Header(key, value)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger middleware for logging HTTP requests
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logrus.WithFields(logrus.Fields{
			"request_id":  c.GetString(RequestIDKey),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
			"client_ip":   c.ClientIP(),
		}).Info("HTTP Request")
	}
}
