package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/modules/content"
	"github.com/chetanraj-2002/portfolio/internal/modules/profile"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/chetanraj-2002/portfolio/pkg/view"
)

// PublicHandler serves the read-only site API.
type PublicHandler struct {
	Content *content.Repo
	Profile *profile.Repo
}

func NewPublicHandler(contentRepo *content.Repo, profileRepo *profile.Repo) *PublicHandler {
	return &PublicHandler{Content: contentRepo, Profile: profileRepo}
}

func (h *PublicHandler) GetProfile(c *gin.Context) {
	p, err := h.Profile.Get(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": view.NewProfile(p)})
}

func (h *PublicHandler) ListSkills(c *gin.Context) {
	items, err := h.Content.Skills(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.SkillItem, 0, len(items))
	for _, s := range items {
		out = append(out, view.NewSkillItem(s))
	}
	c.JSON(http.StatusOK, gin.H{"skills": out})
}

func (h *PublicHandler) ListEducation(c *gin.Context) {
	items, err := h.Content.Education(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.EducationItem, 0, len(items))
	for _, e := range items {
		out = append(out, view.NewEducationItem(e))
	}
	c.JSON(http.StatusOK, gin.H{"education": out})
}

func (h *PublicHandler) ListExperience(c *gin.Context) {
	items, err := h.Content.Experiences(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.ExperienceItem, 0, len(items))
	for _, e := range items {
		out = append(out, view.NewExperienceItem(e))
	}
	c.JSON(http.StatusOK, gin.H{"experience": out})
}

func (h *PublicHandler) ListProjects(c *gin.Context) {
	items, err := h.Content.CompletedProjects(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.ProjectItem, 0, len(items))
	for _, p := range items {
		out = append(out, view.NewProjectItem(p))
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

func (h *PublicHandler) ListMedia(c *gin.Context) {
	items, err := h.Content.Media(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.MediaItemView, 0, len(items))
	for _, m := range items {
		out = append(out, view.NewMediaItemView(m))
	}
	c.JSON(http.StatusOK, gin.H{"media": out})
}

func (h *PublicHandler) ListTestimonials(c *gin.Context) {
	items, err := h.Content.Testimonials(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.TestimonialItem, 0, len(items))
	for _, tm := range items {
		out = append(out, view.NewTestimonialItem(tm))
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": out})
}

func (h *PublicHandler) ListCertificates(c *gin.Context) {
	items, err := h.Content.Certificates(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]view.CertificateItem, 0, len(items))
	for _, cert := range items {
		out = append(out, view.NewCertificateItem(cert))
	}
	c.JSON(http.StatusOK, gin.H{"certificates": out})
}

func (h *PublicHandler) GetTimeline(c *gin.Context) {
	items, err := h.Content.Timeline(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": items})
}

func (h *PublicHandler) GetStats(c *gin.Context) {
	s, err := h.Content.Stats(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": s})
}
