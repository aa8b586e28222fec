package stage

import (
	"github.com/pixelbrew/filmic/internal/raster"
)

// SharpenStage amplifies edges with a fixed 3x3 high-pass kernel (centre 5,
// negative cross neighbours, weights summing to 1). Border and clamp policy
// come from the convolution engine, so a flat image is left unchanged.
type SharpenStage struct{}

func (s *SharpenStage) Name() string { return "sharpen" }

func (s *SharpenStage) Process(in *raster.Buffer) (*raster.Buffer, error) {
	return raster.Convolve(in, raster.Kernel{
		Weights: [][]float64{
			{0, -1, 0},
			{-1, 5, -1},
			{0, -1, 0},
		},
	})
}
