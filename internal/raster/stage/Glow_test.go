package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelbrew/filmic/internal/raster"
)

func TestGlowOnUniformBuffer(t *testing.T) {
	// The blur kernel is normalized, so a flat image blurs to itself and the
	// additive blend becomes clamp(v + strength*v).
	in := uniform(t, 9, 9, raster.Pixel{R: 100, G: 100, B: 100, A: 255})
	out, err := (&GlowStage{Radius: 3, Strength: 0.5}).Process(in)
	require.NoError(t, err)

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			assert.Equal(t, raster.Pixel{R: 150, G: 150, B: 150, A: 255}, pixelAt(t, out, x, y))
		}
	}
}

func TestGlowBlackStaysBlack(t *testing.T) {
	in := uniform(t, 4, 4, raster.Pixel{A: 255})
	out, err := (&GlowStage{Radius: 2, Strength: 0.9}).Process(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestGlowBrightensNeighbourhood(t *testing.T) {
	in := uniform(t, 7, 7, raster.Pixel{A: 255})
	require.NoError(t, in.Set(3, 3, raster.Pixel{R: 255, A: 255}))

	out, err := (&GlowStage{Radius: 2, Strength: 0.8}).Process(in)
	require.NoError(t, err)

	// Pixels near the bright spot pick up spill from the blurred copy.
	assert.Greater(t, pixelAt(t, out, 3, 2).R, uint8(0))
	assert.Greater(t, pixelAt(t, out, 2, 3).R, uint8(0))
	// The far corner sits outside the kernel footprint and stays black.
	assert.Equal(t, uint8(0), pixelAt(t, out, 0, 0).R)
}

func TestGlowRejectsBadRadius(t *testing.T) {
	in := uniform(t, 3, 3, raster.Pixel{A: 255})
	_, err := (&GlowStage{Radius: 0, Strength: 0.2}).Process(in)
	assert.Error(t, err)
}

func TestGlowPreservesDimensionsAndAlpha(t *testing.T) {
	in := uniform(t, 6, 4, raster.Pixel{R: 40, G: 50, B: 60, A: 99})
	out, err := (&GlowStage{Radius: 1, Strength: 0.3}).Process(in)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Width())
	assert.Equal(t, 4, out.Height())
	assert.Equal(t, uint8(99), pixelAt(t, out, 5, 3).A)
}
