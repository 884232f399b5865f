package brandkit

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"

	// Banner artwork arrives as PNG, JPEG, GIF, WebP, BMP or TIFF.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode decodes any registered raster format from r. The format name comes
// back alongside the image so callers can report what they read.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}
	return img, format, nil
}

// DecodeImageBytes decodes raw image bytes.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", errors.New("empty image data")
	}
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens path and decodes the image stored in it.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "open input")
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", path)
	}
	return img, format, nil
}

// EncodePNG is the only output encoder; PNG keeps the alpha channel intact.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePNGFile encodes img as PNG into path. The parent directory must exist.
func WritePNGFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}

func encodePNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return buf.Bytes(), nil
}
