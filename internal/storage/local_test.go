package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExt(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"clip.webm", true},
		{"talk.mp4", true},
		{"voice.mp3", true},
		{"resume.pdf", true},
		{"shell.sh", false},
		{"page.html", false},
		{"binary.exe", false},
		{"noext", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, AllowedExt(tc.filename))
		})
	}
}

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/uploads/")

	res, err := store.Put(context.Background(), strings.NewReader("fake image bytes"), PutInput{
		Filename:    "avatar.png",
		ContentType: "image/png",
		Size:        16,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.Equal(t, "/uploads/"+res.Key, res.URL)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalPutKeysAreUnique(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/uploads")

	a, err := store.Put(context.Background(), strings.NewReader("a"), PutInput{Filename: "same.jpg"})
	require.NoError(t, err)
	b, err := store.Put(context.Background(), strings.NewReader("b"), PutInput{Filename: "same.jpg"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
}

func TestLocalDeleteStripsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/uploads")

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	err := store.Delete(context.Background(), "../victim.txt")
	assert.Error(t, err)

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
