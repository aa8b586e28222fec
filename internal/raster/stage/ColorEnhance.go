package stage

import (
	"github.com/pixelbrew/filmic/internal/raster"
)

// Rec.601 luma coefficients.
// Reference: https://en.wikipedia.org/wiki/Grayscale#Luma_coding_in_video_systems
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// ColorEnhanceStage pushes each colour channel away from the pixel's
// perceptual luminance by Factor. Factor > 1 increases saturation and
// contrast, Factor in (0, 1) flattens towards grey, and Factor == 1 is the
// identity transform, exactly.
type ColorEnhanceStage struct {
	Factor float64
}

func (s *ColorEnhanceStage) Name() string { return "enhance" }

func (s *ColorEnhanceStage) Process(in *raster.Buffer) (*raster.Buffer, error) {
	out, err := raster.New(in.Width(), in.Height())
	if err != nil {
		return nil, err
	}

	// Formulated as c + (Factor-1)*(c-lum) rather than lum + Factor*(c-lum)
	// so Factor == 1 reproduces the input with no floating-point residue.
	gain := s.Factor - 1
	raster.ParallelRows(in.Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < in.Width(); x++ {
				p := in.Clamped(x, y)
				lum := lumaR*float64(p.R) + lumaG*float64(p.G) + lumaB*float64(p.B)
				_ = out.Set(x, y, raster.Pixel{
					R: raster.ClampChannel(float64(p.R) + gain*(float64(p.R)-lum)),
					G: raster.ClampChannel(float64(p.G) + gain*(float64(p.G)-lum)),
					B: raster.ClampChannel(float64(p.B) + gain*(float64(p.B)-lum)),
					A: p.A,
				})
			}
		}
	})
	return out, nil
}
