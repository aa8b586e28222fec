package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/draw"

	"github.com/pixelbrew/filmic/internal/raster"
)

// Thumbnail downscales the buffer so its longest side is maxDim pixels,
// preserving aspect ratio. A light Gaussian pre-blur suppresses aliasing
// before the Catmull-Rom resample. Buffers already within maxDim are
// returned as an untouched copy.
func Thumbnail(b *raster.Buffer, maxDim int) (*raster.Buffer, error) {
	if maxDim < 1 {
		return nil, fmt.Errorf("thumbnail max dimension %d must be at least 1", maxDim)
	}

	w, h := b.Width(), b.Height()
	if w <= maxDim && h <= maxDim {
		return b.Clone(), nil
	}

	outW, outH := maxDim, maxDim
	if w > h {
		outH = h * maxDim / w
	} else {
		outW = w * maxDim / h
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	src := blur.Gaussian(ToImage(b), 1.0)
	dst := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return FromImage(dst)
}
