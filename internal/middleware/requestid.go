package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const requestIDKey = "request_id"

// RequestID attaches an id to every request, reusing the client's
// X-Request-ID when present.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
