package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/http/validation"
	"github.com/chetanraj-2002/portfolio/internal/modules/contact"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

type ContactHandler struct {
	Contact *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{Contact: svc}
}

type contactInput struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required,max=200"`
	Message   string `json:"message" binding:"required,max=5000"`
}

// Submit stores the message; a failed store is the visitor's error, a
// failed notification is not.
func (h *ContactHandler) Submit(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Please correct the highlighted fields.", errs))
		return
	}

	m, err := h.Contact.Submit(c.Request.Context(), contact.SubmitInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Message,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      m.ID,
		"message": "Thanks for reaching out. I'll get back to you soon!",
	})
}
