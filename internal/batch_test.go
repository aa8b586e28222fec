package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelbrew/filmic/internal/imaging"
	"github.com/pixelbrew/filmic/internal/raster"
	"github.com/pixelbrew/filmic/internal/raster/stage"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	b, err := raster.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, b.Set(x, y, raster.Pixel{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255}))
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, imaging.Encode(f, b))
	require.NoError(t, f.Close())
}

func TestNewProcessor(t *testing.T) {
	t.Run("pool size must be positive", func(t *testing.T) {
		_, err := NewProcessor(t.TempDir(), t.TempDir(), 0, nil)
		assert.ErrorContains(t, err, "pool size")
	})

	t.Run("missing input directory", func(t *testing.T) {
		_, err := NewProcessor(filepath.Join(t.TempDir(), "nope"), t.TempDir(), 1, nil)
		assert.Error(t, err)
	})

	t.Run("empty input directory", func(t *testing.T) {
		_, err := NewProcessor(t.TempDir(), t.TempDir(), 1, nil)
		assert.ErrorContains(t, err, "no files")
	})
}

func TestProcessorProcessesDirectory(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writeTestPNG(t, filepath.Join(inDir, "a.png"), 6, 4)
	writeTestPNG(t, filepath.Join(inDir, "b.png"), 3, 3)
	// Non-PNG entries are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("skip me"), 0644))

	stages := []raster.Stage{&stage.SharpenStage{}, &stage.ExposureStage{Factor: 1.1}}
	p, err := NewProcessor(inDir, outDir, 2, stages)
	require.NoError(t, err)

	p.StartWorkers()
	p.DispatchJobs()
	errs := p.Wait()
	assert.Empty(t, errs)

	for name, dims := range map[string][2]int{"a.png": {6, 4}, "b.png": {3, 3}} {
		f, err := os.Open(filepath.Join(outDir, name))
		require.NoError(t, err)
		img, err := imaging.Decode(f)
		require.NoError(t, f.Close())
		require.NoError(t, err)
		assert.Equal(t, dims[0], img.Width())
		assert.Equal(t, dims[1], img.Height())
	}

	_, err = os.Stat(filepath.Join(outDir, "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessorCollectsPerFileErrors(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writeTestPNG(t, filepath.Join(inDir, "good.png"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "corrupt.png"), []byte("not a png"), 0644))

	p, err := NewProcessor(inDir, outDir, 2, nil)
	require.NoError(t, err)

	p.StartWorkers()
	p.DispatchJobs()
	errs := p.Wait()

	// The corrupt file fails, the good one still gets processed.
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "corrupt.png")
	_, err = os.Stat(filepath.Join(outDir, "good.png"))
	assert.NoError(t, err)
}

func TestProcessorSkipsExistingOutput(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeTestPNG(t, filepath.Join(inDir, "a.png"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "a.png"), []byte("already here"), 0644))

	p, err := NewProcessor(inDir, outDir, 1, nil)
	require.NoError(t, err)

	p.StartWorkers()
	p.DispatchJobs()
	assert.Empty(t, p.Wait())

	data, err := os.ReadFile(filepath.Join(outDir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "already here", string(data))
}
