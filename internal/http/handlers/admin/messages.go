package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/modules/contact"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

type MessagesHandler struct {
	Contact *contact.Service
}

func NewMessagesHandler(svc *contact.Service) *MessagesHandler {
	return &MessagesHandler{Contact: svc}
}

type messageView struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	RespondedAt string `json:"responded_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func newMessageView(m contact.Message) messageView {
	v := messageView{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.RespondedAt != nil {
		v.RespondedAt = m.RespondedAt.Format(time.RFC3339)
	}
	return v
}

func (h *MessagesHandler) List(c *gin.Context) {
	items, err := h.Contact.Inbox(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	unread, err := h.Contact.UnreadCount(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]messageView, 0, len(items))
	for _, m := range items {
		out = append(out, newMessageView(m))
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": out,
		"unread":   unread,
	})
}

// View marks an unread message read as a side effect of opening it.
func (h *MessagesHandler) View(c *gin.Context) {
	m, err := h.Contact.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": newMessageView(m)})
}

func (h *MessagesHandler) MarkResponded(c *gin.Context) {
	m, err := h.Contact.MarkResponded(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": newMessageView(m)})
}

func (h *MessagesHandler) Delete(c *gin.Context) {
	if err := h.Contact.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
