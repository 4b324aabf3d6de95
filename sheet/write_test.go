package sheet

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKeepsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(1, 0, red)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))

	got, err := png.Decode(&buf)
	require.NoError(t, err)
	_, _, _, a := got.At(0, 0).RGBA()
	assert.Zero(t, a)
	_, _, _, a = got.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, OutputName)

	require.NoError(t, WriteFile(path, solid(2, 3, red)))
	require.NoError(t, WriteFile(path, solid(4, 3, blue)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestWriteFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", OutputName)
	err := WriteFile(path, solid(2, 2, red))
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
