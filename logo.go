package brandkit

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Default locations used by the logo extractor CLI.
const (
	DefaultBannerPath = "assets/images/logo_banner.png"
	DefaultIconPath   = "assets/icon/app_icon.png"
)

// ExtractOptions tunes logo extraction.
type ExtractOptions struct {
	// MinGap is the number of consecutive transparent columns, starting at
	// the candidate column, that confirm a separator. Near the right edge
	// fewer columns are checked.
	MinGap int
	// FallbackRatio is the share of the banner width used as the logo region
	// when no separator is found.
	FallbackRatio float64
	// PaddingRatio is the transparent border added on every side, relative
	// to the square side.
	PaddingRatio float64
}

// DefaultExtractOptions returns a 10 column gap, a 40% fallback width and a
// 10% border.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{MinGap: 10, FallbackRatio: 0.4, PaddingRatio: 0.1}
}

func (o ExtractOptions) validate() error {
	if o.MinGap < 0 {
		return errors.Errorf("negative separator gap %d", o.MinGap)
	}
	if o.FallbackRatio < 0 || o.FallbackRatio > 1 {
		return errors.Errorf("fallback ratio %.2f out of range [0, 1]", o.FallbackRatio)
	}
	if o.PaddingRatio < 0 {
		return errors.Errorf("negative padding ratio %.2f", o.PaddingRatio)
	}
	return nil
}

// Info describes how an icon was cut out of a banner.
type Info struct {
	LogoEnd   int
	Separator bool
	Bounds    image.Rectangle
	Trimmed   bool
	Size      int
	Padding   int
}

// ExtractIcon cuts the leftmost logo out of banner, trims its transparent
// margin and centers it on a transparent square with a padded border.
func ExtractIcon(banner image.Image, opts ExtractOptions) (*image.NRGBA, Info, error) {
	if err := opts.validate(); err != nil {
		return nil, Info{}, err
	}

	src, err := cloneToNRGBA(banner)
	if err != nil {
		return nil, Info{}, err
	}

	width, height := src.Rect.Dx(), src.Rect.Dy()

	info := Info{LogoEnd: FindLogoEnd(src, opts.MinGap)}
	if info.LogoEnd == 0 {
		info.LogoEnd = int(float64(width) * opts.FallbackRatio)
	} else {
		info.Separator = true
	}

	region := image.Rect(0, 0, info.LogoEnd, height)
	if bbox, ok := AlphaBounds(src, region); ok {
		region = bbox
		info.Trimmed = true
	}
	info.Bounds = region

	logoW, logoH := region.Dx(), region.Dy()
	info.Size = max(logoW, logoH)
	info.Padding = int(float64(info.Size) * opts.PaddingRatio)

	side := info.Size + 2*info.Padding
	if side <= 0 {
		return nil, Info{}, errors.Errorf("empty logo region %v", region)
	}

	at := image.Pt(
		info.Padding+(info.Size-logoW)/2,
		info.Padding+(info.Size-logoH)/2,
	)
	icon := imaging.Paste(imaging.New(side, side, color.NRGBA{}), imaging.Crop(src, region), at)

	return icon, info, nil
}

// FindLogoEnd returns the first fully transparent column that follows at
// least one visible column and is itself followed by transparent columns up
// to minGap (or the right edge). It returns 0 when no such column exists.
func FindLogoEnd(img *image.NRGBA, minGap int) int {
	bounds := img.Bounds()
	width := bounds.Dx()

	empty := make([]bool, width)
	for x := 0; x < width; x++ {
		empty[x] = isColumnEmpty(img, bounds.Min.X+x)
	}

	inLogo := false
	for x := 0; x < width; x++ {
		if !empty[x] {
			inLogo = true
			continue
		}
		if !inLogo {
			continue
		}

		separator := true
		for cx := x; cx < min(x+minGap, width); cx++ {
			if !empty[cx] {
				separator = false
				break
			}
		}
		if separator {
			return x
		}
	}

	return 0
}

func isColumnEmpty(img *image.NRGBA, x int) bool {
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		if img.Pix[img.PixOffset(x, y)+3] > 0 {
			return false
		}
	}
	return true
}

// AlphaBounds returns the smallest rectangle inside r holding every pixel
// with non-zero alpha. ok is false when r is fully transparent.
func AlphaBounds(img *image.NRGBA, r image.Rectangle) (bounds image.Rectangle, ok bool) {
	r = r.Intersect(img.Rect)

	minX, minY := r.Max.X, r.Max.Y
	maxX, maxY := r.Min.X, r.Min.Y

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x+1), max(maxY, y+1)
			ok = true
		}
	}

	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}
