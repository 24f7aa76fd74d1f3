package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

const streamHeartbeat = 30 * time.Second

// Stream pushes change events to the client over server-sent events.
// Events carry no payload beyond entity/action/id; clients re-fetch the
// views they display.
func (h *Handler) Stream(c *ginext.Context) {
	ch, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	// The server's write deadline would cut the connection long before the
	// first heartbeat; streams stay open until the client goes away. Writers
	// without a deadline (recorders) report ErrNotSupported, which is fine.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case ev := <-ch:
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
