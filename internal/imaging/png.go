// Package imaging is the codec boundary around the raster core: PNG
// decode/encode, preview thumbnails and stage-by-stage animations. Pixel
// work belongs in the raster package, not here.
package imaging

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pixelbrew/filmic/internal/raster"
)

// Decode reads a PNG stream into a raster buffer.
func Decode(r io.Reader) (*raster.Buffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Encode writes the buffer as a PNG stream.
func Encode(w io.Writer, b *raster.Buffer) error {
	return png.Encode(w, ToImage(b))
}

// FromImage converts any image.Image into a raster buffer, flattening to
// 8-bit non-premultiplied RGBA.
func FromImage(img image.Image) (*raster.Buffer, error) {
	bounds := img.Bounds()
	buf, err := raster.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				nrgba.Set(x, y, img.At(x, y))
			}
		}
	}
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			_ = buf.Set(x, y, raster.Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return buf, nil
}

// ToImage converts a raster buffer back into an image.NRGBA.
func ToImage(b *raster.Buffer) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := b.Clamped(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return out
}
