package handlers

import (
	"context"
	"io"
	"net/http"

	"btl-run-api/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LambdaHandler is the handler shape shared by the Lambda and server modes.
type LambdaHandler func(ctx context.Context, req *lambda.Request) (*lambda.Response, error)

// Gin adapts a lambda-style handler to a gin route so both deployment modes
// run the same handler code.
func Gin(handler LambdaHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		headers := make(map[string]string, len(c.Request.Header))
		for key := range c.Request.Header {
			headers[key] = c.GetHeader(key)
		}

		queryParams := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values[0]
			}
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}

		req := &lambda.Request{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Headers:     headers,
			QueryParams: queryParams,
			Body:        body,
		}

		resp, err := handler(c.Request.Context(), req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.Path,
				"error":  err.Error(),
			}).Error("Handler failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}
