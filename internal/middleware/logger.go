package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// errorKey is where handlers stash the failure for the access log.
const errorKey = "error"

// RequestLogger writes one access log line per request. Handlers record
// failures under the "error" context key; the full error text only ever
// reaches this log line, clients see the mapped status.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		requestID, _ := c.Get(requestIDKey)

		if errMsg, ok := c.Get(errorKey); ok {
			log.Error("request failed",
				logger.Any("request_id", requestID),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.Any("error", errMsg),
			)
			return
		}

		log.Info("request handled",
			logger.Any("request_id", requestID),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}
