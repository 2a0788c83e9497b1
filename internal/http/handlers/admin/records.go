package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/modules/profile"
	"github.com/chetanraj-2002/portfolio/internal/modules/records"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

// RecordsHandler is the one CRUD surface behind every managed section.
// The :resource URL segment picks the schema; everything else is shared.
type RecordsHandler struct {
	Manager  *records.Manager
	Profiles *profile.Repo
}

func NewRecordsHandler(m *records.Manager, profiles *profile.Repo) *RecordsHandler {
	return &RecordsHandler{Manager: m, Profiles: profiles}
}

func (h *RecordsHandler) resource(c *gin.Context) (records.Resource, bool) {
	res, ok := records.Lookup(c.Param("resource"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Unknown section."))
		return records.Resource{}, false
	}
	return res, true
}

func (h *RecordsHandler) List(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	adminID, err := ownerID(c, h.Profiles)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	rows, err := h.Manager.List(c.Request.Context(), res, adminID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	next, err := h.Manager.NextOrderIndex(c.Request.Context(), res, adminID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":            rows,
		"next_order_index": next,
	})
}

func (h *RecordsHandler) Get(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	adminID, err := ownerID(c, h.Profiles)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	row, err := h.Manager.Get(c.Request.Context(), res, adminID, c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":        row,
		"form_values": res.FormValues(row),
	})
}

func (h *RecordsHandler) Create(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	adminID, err := ownerID(c, h.Profiles)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", nil))
		return
	}

	row, err := h.Manager.Create(c.Request.Context(), res, adminID, input)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": row})
}

func (h *RecordsHandler) Update(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	adminID, err := ownerID(c, h.Profiles)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", nil))
		return
	}

	row, err := h.Manager.Update(c.Request.Context(), res, adminID, c.Param("id"), input)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": row})
}

func (h *RecordsHandler) Delete(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	adminID, err := ownerID(c, h.Profiles)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.Manager.Delete(c.Request.Context(), res, adminID, c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
