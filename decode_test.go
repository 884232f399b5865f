package brandkit

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestDecodeFileFormats(t *testing.T) {
	dir := t.TempDir()
	src := filledNRGBA(6, 4, color.NRGBA{R: 10, G: 200, B: 30, A: 255})

	pngPath := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(pngPath, encodeTestPNG(t, src), 0o644))

	bmpPath := filepath.Join(dir, "in.bmp")
	f, err := os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, src))
	require.NoError(t, f.Close())

	jpgPath := filepath.Join(dir, "in.jpg")
	f, err = os.Create(jpgPath)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, src, nil))
	require.NoError(t, f.Close())

	cases := []struct {
		path   string
		format string
	}{
		{path: pngPath, format: "png"},
		{path: bmpPath, format: "bmp"},
		{path: jpgPath, format: "jpeg"},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			img, format, err := DecodeFile(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
			assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
		})
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWritePNGFileRoundTrip(t *testing.T) {
	src := filledNRGBA(3, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, WritePNGFile(path, src))

	got, format, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.True(t, imagesEqual(t, src, got))
}

func TestWritePNGFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")

	err := WritePNGFile(path, filledNRGBA(1, 1, color.NRGBA{A: 255}))
	assert.Error(t, err)
}
