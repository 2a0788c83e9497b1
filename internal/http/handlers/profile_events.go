package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/modules/profile"
)

// ProfileEventsHandler streams change notifications over SSE so open
// pages can refetch the profile without polling.
type ProfileEventsHandler struct {
	Broadcaster *profile.Broadcaster
}

func NewProfileEventsHandler(b *profile.Broadcaster) *ProfileEventsHandler {
	return &ProfileEventsHandler{Broadcaster: b}
}

func (h *ProfileEventsHandler) Stream(c *gin.Context) {
	ch, cancel := h.Broadcaster.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ch:
			c.SSEvent("profile_updated", gin.H{"resource": "admin_profile"})
			return true
		}
	})
}
