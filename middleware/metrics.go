package middleware

import (
	"time"

	"github.com/backbenchers/image-api/monitor"
	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight requests.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		monitor.IncrementConcurrent()
		defer monitor.DecrementConcurrent()

		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitor.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(startTime))
	}
}
