package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request through the standard logger.
// Health probes are only logged when they fail.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		if path == "/health" && status < http.StatusBadRequest {
			return
		}

		caller := "anon"
		if id, ok := CurrentUserID(c); ok {
			caller = "user:" + strconv.FormatUint(uint64(id), 10)
		}

		line := []interface{}{c.Request.Method, path, status, time.Since(start).Round(time.Microsecond), c.ClientIP(), caller, c.Writer.Size()}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			log.Printf("%s %s %d %s %s %s %dB err=%q", append(line, errs.Last().Error())...)
			return
		}
		log.Printf("%s %s %d %s %s %s %dB", line...)
	}
}

