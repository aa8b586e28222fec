package stage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelbrew/filmic/internal/raster"
)

func uniform(t *testing.T, w, h int, p raster.Pixel) *raster.Buffer {
	t.Helper()
	b, err := raster.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, b.Set(x, y, p))
		}
	}
	return b
}

func pixelAt(t *testing.T, b *raster.Buffer, x, y int) raster.Pixel {
	t.Helper()
	p, err := b.At(x, y)
	require.NoError(t, err)
	return p
}
