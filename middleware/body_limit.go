package middleware

import (
	"net/http"

	"blogapi/apperrors"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps the request body at limit bytes. Requests that announce a larger body are
// refused up front; the rest fail while reading.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			abortWithError(c, apperrors.TooLarge("Request body too large", nil))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
