package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every inbound call with an identifier so log lines from
// one translation can be correlated. An identifier supplied by the caller
// is kept; otherwise a fresh UUID is assigned.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requestID returns the identifier assigned by the RequestID middleware, or
// an empty string when the middleware is not installed.
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
