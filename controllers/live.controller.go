package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LiveProducts streams catalog snapshots over server-sent events. The
// client gets the current snapshot on connect and a fresh one after
// every catalog change; the subscription ends with the request.
func (ctrl *Controller) LiveProducts(c *gin.Context) {
	if ctrl.ProductFeed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Live feed not available"})
		return
	}

	id, ch := ctrl.ProductFeed.Subscribe()
	defer ctrl.ProductFeed.Unsubscribe(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", string(snapshot))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
