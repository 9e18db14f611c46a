package middleware

import (
	"time"

	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each HTTP request once it has been handled. Events
// are also stored in the request_logs table when util.SetRequestLogDB was
// called during startup.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		util.LogRequestEvent(util.RequestEvent{
			RequestID: GetRequestID(c),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Route:     c.FullPath(),
			Query:     c.Request.URL.RawQuery,
			Status:    c.Writer.Status(),
			Latency:   time.Since(start),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
	}
}
