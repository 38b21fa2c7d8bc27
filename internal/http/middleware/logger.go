package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one request log line with the request_id. The route template
// is logged instead of the raw path so ids do not explode log cardinality.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		reqID := GetRequestID(c)
		route := c.FullPath()
		if route == "" {
			// unmatched route (404): fall back to the raw path
			route = c.Request.URL.Path
		}

		log.Printf("[HTTP] request_id=%s method=%s route=%s status=%d latency_ms=%.3f bytes=%d ip=%s",
			reqID,
			c.Request.Method,
			route,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.Writer.Size(),
			c.ClientIP(),
		)
	}
}
