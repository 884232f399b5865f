package brandkit

import "image"

// DarknessThreshold is the default channel limit used by KeyBlack. A pixel is
// keyed out when its red, green and blue values are all strictly below it.
const DarknessThreshold = 20

// KeyBlack returns a copy of img in which every pixel whose R, G and B
// channels are all below threshold is replaced by fully transparent black.
// All other pixels keep their original values, alpha included.
func KeyBlack(img image.Image, threshold uint8) (*image.NRGBA, error) {
	out, err := cloneToNRGBA(img)
	if err != nil {
		return nil, err
	}

	keyDarkPixels(out, threshold)
	return out, nil
}

// keyDarkPixels mutates the buffer in place.
func keyDarkPixels(img *image.NRGBA, threshold uint8) {
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			px := img.Pix[offset : offset+4 : offset+4]

			if px[0] < threshold && px[1] < threshold && px[2] < threshold {
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			}
		}
	}
}
