package stage

import (
	"fmt"

	"github.com/pixelbrew/filmic/internal/raster"
)

// GlowStage blooms highlights: a low-pass copy of the image is blended back
// additively, out = clamp(original + Strength * blurred). The blur kernel is
// sized by Radius with inverse-square-distance weights normalized to sum 1,
// so a flat image gains exactly Strength * its own value. Strength is meant
// to be small; the clamp is the only hard ceiling.
type GlowStage struct {
	Radius   int
	Strength float64
}

func (s *GlowStage) Name() string { return "glow" }

func (s *GlowStage) Process(in *raster.Buffer) (*raster.Buffer, error) {
	if s.Radius < 1 {
		return nil, fmt.Errorf("glow radius %d must be at least 1", s.Radius)
	}

	blurred, err := raster.Convolve(in, lowPassKernel(s.Radius))
	if err != nil {
		return nil, err
	}

	out, err := raster.New(in.Width(), in.Height())
	if err != nil {
		return nil, err
	}
	raster.ParallelRows(in.Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < in.Width(); x++ {
				p := in.Clamped(x, y)
				b := blurred.Clamped(x, y)
				_ = out.Set(x, y, raster.Pixel{
					R: raster.ClampChannel(float64(p.R) + s.Strength*float64(b.R)),
					G: raster.ClampChannel(float64(p.G) + s.Strength*float64(b.G)),
					B: raster.ClampChannel(float64(p.B) + s.Strength*float64(b.B)),
					A: p.A,
				})
			}
		}
	})
	return out, nil
}

// lowPassKernel builds a (2r+1)x(2r+1) kernel weighted by 1/(dx²+dy²+1).
// The zero Divisor defaults to the weight sum, normalizing the kernel.
func lowPassKernel(radius int) raster.Kernel {
	size := 2*radius + 1
	weights := make([][]float64, size)
	for dy := -radius; dy <= radius; dy++ {
		row := make([]float64, size)
		for dx := -radius; dx <= radius; dx++ {
			row[dx+radius] = 1.0 / float64(dx*dx+dy*dy+1)
		}
		weights[dy+radius] = row
	}
	return raster.Kernel{Weights: weights}
}
