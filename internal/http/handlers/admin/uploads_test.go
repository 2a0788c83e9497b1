package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/storage"
)

type stubStore struct {
	puts int
	last storage.PutInput
}

func (s *stubStore) Put(ctx context.Context, r io.Reader, in storage.PutInput) (storage.PutResult, error) {
	s.puts++
	s.last = in
	return storage.PutResult{Key: "k.png", URL: "/uploads/k.png"}, nil
}

func (s *stubStore) Delete(ctx context.Context, key string) error { return nil }

func newUploadsRouter(t *testing.T, maxBytes int64) (*gin.Engine, *stubStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &stubStore{}
	h := NewUploadsHandler(store, maxBytes)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(logger))
	r.POST("/api/admin/uploads", h.Create)
	return r, store
}

func postFile(t *testing.T, r *gin.Engine, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadsCreate(t *testing.T) {
	r, store := newUploadsRouter(t, 1024)

	w := postFile(t, r, "avatar.png", "small image bytes")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "k.png", resp.Key)
	assert.Equal(t, 1, store.puts)
	assert.Equal(t, "avatar.png", store.last.Filename)
}

func TestUploadsCreateRejectsOversizedBeforeStore(t *testing.T) {
	r, store := newUploadsRouter(t, 8)

	w := postFile(t, r, "huge.png", strings.Repeat("x", 64))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too large")
	assert.Equal(t, 0, store.puts, "oversized files must never reach the store")
}

func TestUploadsCreateRejectsUnsupportedExtension(t *testing.T) {
	r, store := newUploadsRouter(t, 1024)

	w := postFile(t, r, "shell.sh", "#!/bin/sh")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported file type")
	assert.Equal(t, 0, store.puts)
}

func TestUploadsCreateRequiresFile(t *testing.T) {
	r, store := newUploadsRouter(t, 1024)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.puts)
}
