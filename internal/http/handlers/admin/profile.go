package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/http/validation"
	"github.com/chetanraj-2002/portfolio/internal/modules/profile"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/chetanraj-2002/portfolio/pkg/view"
)

type ProfileHandler struct {
	Profiles *profile.Repo
}

func NewProfileHandler(profiles *profile.Repo) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	if _, err := ownerID(c, h.Profiles); err != nil {
		middleware.Fail(c, err)
		return
	}
	p, err := h.Profiles.Get(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": view.NewProfile(p)})
}

type profileInput struct {
	FullName        string `json:"full_name" binding:"required,max=255"`
	Email           string `json:"email" binding:"required,email"`
	Title           string `json:"title" binding:"max=255"`
	Bio             string `json:"bio" binding:"max=5000"`
	Location        string `json:"location" binding:"max=255"`
	Phone           string `json:"phone" binding:"max=64"`
	GithubURL       string `json:"github_url" binding:"omitempty,url"`
	LinkedinURL     string `json:"linkedin_url" binding:"omitempty,url"`
	ProfileImageURL string `json:"profile_image_url" binding:"max=512"`
	ResumeURL       string `json:"resume_url" binding:"max=512"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Not signed in."))
		return
	}

	var in profileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Please correct the highlighted fields.", errs))
		return
	}

	p, err := h.Profiles.Update(c.Request.Context(), u.ID, profile.UpdateInput{
		FullName:        in.FullName,
		Email:           in.Email,
		Title:           in.Title,
		Bio:             in.Bio,
		Location:        in.Location,
		Phone:           in.Phone,
		GithubURL:       in.GithubURL,
		LinkedinURL:     in.LinkedinURL,
		ProfileImageURL: in.ProfileImageURL,
		ResumeURL:       in.ResumeURL,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": view.NewProfile(p)})
}
