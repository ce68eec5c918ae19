package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
)

func TestSaveObjectStoresUnderBucket(t *testing.T) {
	root := t.TempDir()
	l, err := NewLocal(root, "http://localhost:8080/files")
	require.NoError(t, err)

	path, err := l.SaveObject("customer-pics", "portrait.JPG", []byte("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "customer-pics/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"), "extension is kept, lowercased")

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	assert.Equal(t, "http://localhost:8080/files/"+path, l.PublicURL(path))
}

func TestSaveObjectRejectsBadBucketNames(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "files")
	l, err := NewLocal(root, "http://localhost:8080/files")
	require.NoError(t, err)

	for _, bucket := range []string{"", ".", "..", "../escape", "a/b", `a\b`, "a..b"} {
		_, err := l.SaveObject(bucket, "x.png", []byte("img"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "bucket %q", bucket)
	}

	// Nothing may appear next to the storage root.
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "files", entries[0].Name())
}
