package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket/internal/events"
)

type EventsHandler struct {
	Hub *events.Hub
}

// Stream serves the SSE feed the dashboard listens on for live refreshes.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	fmt.Fprintf(c.Writer, "event: message\ndata: {\"type\":\"connected\"}\n\n")
	flusher.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case evt := <-ch:
			fmt.Fprintf(c.Writer, "event: message\ndata: %s\n\n", evt.Encode())
			flusher.Flush()
		}
	}
}
