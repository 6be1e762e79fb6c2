package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easyliving/backend/internal/logger"
)

// RequestLogger assigns each request a correlation ID and logs it with
// structured fields once the response is written. An X-Request-ID header
// from the client is honored; otherwise a new ID is generated.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		requestID := logger.RequestIDFromContext(ctx)
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logger.Ctx(c.Request.Context()).Info("http request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
