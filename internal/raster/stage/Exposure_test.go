package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelbrew/filmic/internal/raster"
)

func TestExposure(t *testing.T) {
	in := uniform(t, 1, 1, raster.Pixel{R: 100, G: 150, B: 200, A: 70})

	t.Run("factor 1 is identity", func(t *testing.T) {
		out, err := (&ExposureStage{Factor: 1.0}).Process(in)
		require.NoError(t, err)
		assert.True(t, in.Equal(out))
	})

	t.Run("brighten", func(t *testing.T) {
		out, err := (&ExposureStage{Factor: 2.0}).Process(in)
		require.NoError(t, err)
		assert.Equal(t, raster.Pixel{R: 200, G: 255, B: 255, A: 70}, pixelAt(t, out, 0, 0))
	})

	t.Run("darken", func(t *testing.T) {
		out, err := (&ExposureStage{Factor: 0.5}).Process(in)
		require.NoError(t, err)
		assert.Equal(t, raster.Pixel{R: 50, G: 75, B: 100, A: 70}, pixelAt(t, out, 0, 0))
	})

	t.Run("negative factor rejected", func(t *testing.T) {
		_, err := (&ExposureStage{Factor: -0.1}).Process(in)
		assert.Error(t, err)
	})
}
