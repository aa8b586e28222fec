package stage

import (
	"github.com/pixelbrew/filmic/internal/raster"
)

// GreyscaleStage replaces each pixel's colour channels with its Rec.601
// luminance. Alpha is preserved.
type GreyscaleStage struct{}

func (s *GreyscaleStage) Name() string { return "greyscale" }

func (s *GreyscaleStage) Process(in *raster.Buffer) (*raster.Buffer, error) {
	out, err := raster.New(in.Width(), in.Height())
	if err != nil {
		return nil, err
	}
	raster.ParallelRows(in.Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < in.Width(); x++ {
				p := in.Clamped(x, y)
				lum := raster.ClampChannel(lumaR*float64(p.R) + lumaG*float64(p.G) + lumaB*float64(p.B))
				_ = out.Set(x, y, raster.Pixel{R: lum, G: lum, B: lum, A: p.A})
			}
		}
	})
	return out, nil
}
