package sheet

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/portraits/ttesting"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 95}))
	require.NoError(t, f.Close())
}

type progressCall struct {
	i, n int
	name string
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "leaderA.png"), solid(300, 450, red))
	writeJPEG(t, filepath.Join(dir, "leaderB.jpg"), solid(1200, 1800, green))
	writePNG(t, filepath.Join(dir, "leaderC.png"), solid(600, 900, blue))
	writePNG(t, filepath.Join(dir, "other.png"), solid(10, 10, color.White))

	var calls []progressCall
	res, err := Build(DefaultConfig(dir), func(i, n int, name string) {
		calls = append(calls, progressCall{i, n, name})
	})
	require.NoError(t, err)

	assert.True(t, res.Written)
	assert.Equal(t, []string{"leaderA.png", "leaderB.jpg", "leaderC.png"}, res.Files)
	assert.Equal(t, filepath.Join(dir, OutputName), res.Output)
	assert.Equal(t, []progressCall{
		{1, 3, "leaderA.png"},
		{2, 3, "leaderB.jpg"},
		{3, 3, "leaderC.png"},
	}, calls)

	f, err := os.Open(res.Output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	ttesting.AssertEqualPoint(t, "size", img.Bounds().Size(), image.Pt(1800, 900))
	ttesting.AssertEqualPoint(t, "result size", res.Size, image.Pt(1800, 900))
	ttesting.AssertColorNear(t, "A", img.At(300, 450), red, 4)
	ttesting.AssertColorNear(t, "B", img.At(900, 450), green, 8)
	ttesting.AssertColorNear(t, "C", img.At(1500, 450), blue, 4)
}

func TestBuildNoSources(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "other.png"), solid(10, 10, red))

	called := false
	res, err := Build(DefaultConfig(dir), func(int, int, string) { called = true })
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Empty(t, res.Files)
	assert.False(t, called)

	_, err = os.Stat(filepath.Join(dir, OutputName))
	assert.True(t, os.IsNotExist(err), "output should not exist, stat err %v", err)
}

func TestBuildCorruptSource(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "leaderA.png"), solid(600, 900, red))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaderB.png"), []byte("garbage"), 0o644))
	writePNG(t, filepath.Join(dir, "leaderC.png"), solid(600, 900, blue))

	var seen []string
	_, err := Build(DefaultConfig(dir), func(_, _ int, name string) { seen = append(seen, name) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaderB.png")
	assert.Equal(t, []string{"leaderA.png", "leaderB.png"}, seen)

	_, err = os.Stat(filepath.Join(dir, OutputName))
	assert.True(t, os.IsNotExist(err), "output should not exist, stat err %v", err)
}

func TestBuildUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "leaderA.png"), solid(600, 900, red))

	c := DefaultConfig(dir)
	c.Output = filepath.Join(dir, "missing", OutputName)
	_, err := Build(c, nil)
	assert.Error(t, err)
}

func TestBuildSkipsOwnOutput(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "leaderA.png"), solid(600, 900, red))

	c := DefaultConfig(dir)
	c.Output = "leader_sheet.png"
	for run := 0; run < 2; run++ {
		res, err := Build(c, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"leaderA.png"}, res.Files, "run %d", run)
		assert.Equal(t, image.Pt(600, 900), res.Size, "run %d", run)
	}
}

func TestBuildDeterministic(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 777, 1003))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}
	writePNG(t, filepath.Join(dir, "leaderA.png"), src)

	first, err := Build(DefaultConfig(dir), nil)
	require.NoError(t, err)
	a, err := os.ReadFile(first.Output)
	require.NoError(t, err)

	_, err = Build(DefaultConfig(dir), nil)
	require.NoError(t, err)
	b, err := os.ReadFile(first.Output)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
