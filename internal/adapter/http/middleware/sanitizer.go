package middleware

import (
	"net/http"

	"credit-card-service/pkg/apperror"
	"credit-card-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize limits the request body size. Requests that declare a larger
// Content-Length are rejected with 413 up front; others get a reader that
// fails once the limit is crossed.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.ErrPayloadTooLarge())
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
