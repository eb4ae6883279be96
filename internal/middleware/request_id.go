package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID in both directions
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	maxIDLength  = 128
)

// RequestID reuses the caller's X-Request-ID header or generates a new UUID.
// The value is stored on the gin context and echoed in the response header
// so a request can be traced through the logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the ID stored by RequestID, or "" if the middleware did not run
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
