package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/chetanraj-2002/portfolio/internal/storage"
)

type UploadsHandler struct {
	Storage  storage.Storage
	MaxBytes int64
}

func NewUploadsHandler(st storage.Storage, maxBytes int64) *UploadsHandler {
	return &UploadsHandler{Storage: st, MaxBytes: maxBytes}
}

// Create accepts one multipart file, rejects oversized or unsupported
// files before touching the store, and returns the public URL the form
// stores as a plain string field.
func (h *UploadsHandler) Create(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Choose a file to upload.", map[string]string{
			"file": "Choose a file to upload.",
		}))
		return
	}

	if fh.Size > h.MaxBytes {
		middleware.Fail(c, apperr.InvalidErr("File is too large.", map[string]string{
			"file": "File is too large.",
		}))
		return
	}
	if !storage.AllowedExt(fh.Filename) {
		middleware.Fail(c, apperr.InvalidErr("Unsupported file type.", map[string]string{
			"file": "Unsupported file type.",
		}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Storage.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key": res.Key,
		"url": res.URL,
	})
}
