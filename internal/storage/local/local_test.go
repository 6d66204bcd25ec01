package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, "http://localhost:8080/")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "paintings", "sunset.jpg", strings.NewReader("imagedata"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/paintings_"), url)
	assert.True(t, strings.HasSuffix(url, "_sunset.jpg"), url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "imagedata", string(data))
}

func TestUploadSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "site-assets", "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_passwd"))
}
