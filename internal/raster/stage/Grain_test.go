package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelbrew/filmic/internal/raster"
)

func TestGrainDeterministicForFixedSeed(t *testing.T) {
	in := uniform(t, 16, 16, raster.Pixel{R: 128, G: 128, B: 128, A: 255})
	s := &GrainStage{Intensity: 20, Seed: 42}

	first, err := s.Process(in)
	require.NoError(t, err)
	second, err := s.Process(in)
	require.NoError(t, err)

	assert.True(t, first.Equal(second), "same seed must produce byte-identical output")
}

func TestGrainSeedChangesOutput(t *testing.T) {
	in := uniform(t, 16, 16, raster.Pixel{R: 128, G: 128, B: 128, A: 255})

	a, err := (&GrainStage{Intensity: 20, Seed: 1}).Process(in)
	require.NoError(t, err)
	b, err := (&GrainStage{Intensity: 20, Seed: 2}).Process(in)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}

func TestGrainZeroIntensityIsIdentity(t *testing.T) {
	in := uniform(t, 4, 4, raster.Pixel{R: 10, G: 200, B: 99, A: 123})
	out, err := (&GrainStage{Intensity: 0, Seed: 7}).Process(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestGrainPreservesAlphaAndDimensions(t *testing.T) {
	in := uniform(t, 5, 3, raster.Pixel{R: 128, G: 128, B: 128, A: 64})
	out, err := (&GrainStage{Intensity: 50, Seed: 9}).Process(in)
	require.NoError(t, err)

	assert.Equal(t, in.Width(), out.Width())
	assert.Equal(t, in.Height(), out.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			assert.Equal(t, uint8(64), pixelAt(t, out, x, y).A)
		}
	}
}

func TestGrainClampsAtExtremes(t *testing.T) {
	// Black and white inputs with huge intensity must stay in range; the
	// Pixel type guarantees it, this pins down that nothing panics or wraps.
	for _, p := range []raster.Pixel{{A: 255}, {R: 255, G: 255, B: 255, A: 255}} {
		in := uniform(t, 8, 8, p)
		out, err := (&GrainStage{Intensity: 300, Seed: 3}).Process(in)
		require.NoError(t, err)
		assert.Equal(t, in.Width(), out.Width())
	}
}

func TestGrainNegativeIntensity(t *testing.T) {
	in := uniform(t, 2, 2, raster.Pixel{A: 255})
	_, err := (&GrainStage{Intensity: -1}).Process(in)
	assert.Error(t, err)
}
