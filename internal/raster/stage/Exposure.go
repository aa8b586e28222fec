package stage

import (
	"fmt"

	"github.com/pixelbrew/filmic/internal/raster"
)

// ExposureStage scales each colour channel by Factor. Values above 1 brighten,
// values in (0, 1) darken, 1 is the identity. Alpha is preserved.
type ExposureStage struct {
	Factor float64
}

func (s *ExposureStage) Name() string { return "exposure" }

func (s *ExposureStage) Process(in *raster.Buffer) (*raster.Buffer, error) {
	if s.Factor < 0 {
		return nil, fmt.Errorf("exposure factor %g must not be negative", s.Factor)
	}
	out, err := raster.New(in.Width(), in.Height())
	if err != nil {
		return nil, err
	}
	raster.ParallelRows(in.Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < in.Width(); x++ {
				p := in.Clamped(x, y)
				_ = out.Set(x, y, raster.Pixel{
					R: raster.ClampChannel(s.Factor * float64(p.R)),
					G: raster.ClampChannel(s.Factor * float64(p.G)),
					B: raster.ClampChannel(s.Factor * float64(p.B)),
					A: p.A,
				})
			}
		}
	})
	return out, nil
}
