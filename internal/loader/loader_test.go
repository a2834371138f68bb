package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/ctromutil/internal/rom"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load unheadered file", func(t *testing.T) {
		tmpFile := createTempFile(t, "ct.sfc", make([]byte, 2048))

		img, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.NotNil(t, img)
		assert.False(t, img.HasCopierHeader())
		assert.Equal(t, 2048, img.Size())
	})

	t.Run("load headered file", func(t *testing.T) {
		tmpFile := createTempFile(t, "ct.smc", make([]byte, rom.CopierHeaderSize+2048))

		img, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.True(t, img.HasCopierHeader())
		assert.Equal(t, 2048, img.Size())
		assert.Equal(t, rom.CopierHeaderSize+2048, img.FileSize())
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, "empty.sfc", nil)

		img, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 0, img.Size())
		assert.Equal(t, rom.Unknown, img.MappingMode())
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.smc")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestLoadPair(t *testing.T) {
	a := createTempFile(t, "a.sfc", []byte{1, 2, 3})
	b := createTempFile(t, "b.sfc", []byte{1, 2})

	imgA, imgB, err := New().LoadPair(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 3, imgA.Size())
	assert.Equal(t, 2, imgB.Size())

	_, _, err = New().LoadPair(a, "/nonexistent/b.sfc")
	assert.Error(t, err)

	_, _, err = New().LoadPair("/nonexistent/a.sfc", b)
	assert.Error(t, err)
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
