package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// streamEvents pushes store change notifications to the dashboard over
// Server-Sent Events. Events are hints only: the client re-fetches the full
// collection named by the event.
func (h *Handler) streamEvents(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	events, cancel := h.events.Subscribe()
	defer cancel()

	fmt.Fprint(c.Writer, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	ctx := c.Request.Context()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case ev, open := <-events:
			if !open {
				return
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", ev)
			flusher.Flush()
		}
	}
}
