package brandkit

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// ResizeSquare scales img to a side x side square with Catmull-Rom
// resampling. Non-square inputs are stretched.
func ResizeSquare(img image.Image, side int) (*image.NRGBA, error) {
	if img == nil {
		return nil, errors.New("nil image provided")
	}
	if side <= 0 {
		return nil, errors.Errorf("invalid icon size %d", side)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
