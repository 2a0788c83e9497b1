package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}

// AllowedExt reports whether the file extension is accepted for upload.
// Images, gallery media, plus PDF (resume, certificate scans).
func AllowedExt(filename string) bool {
	return safeExt(filename) != ""
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".pdf",
		".mp4", ".webm", ".mp3", ".wav":
		return ext
	default:
		return ""
	}
}
