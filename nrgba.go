package brandkit

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// cloneToNRGBA returns a straight-alpha copy of src with its origin at (0, 0).
// 16-bit and non-premultiplied sources keep their channel values without a
// premultiply round trip.
func cloneToNRGBA(src image.Image) (*image.NRGBA, error) {
	if src == nil {
		return nil, errors.New("nil image provided")
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, errors.Errorf("invalid image dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	return imaging.Clone(src), nil
}
