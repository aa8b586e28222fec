package imaging

import (
	"bytes"
	"errors"

	"github.com/kettek/apng"

	"github.com/pixelbrew/filmic/internal/raster"
)

// Animate renders the buffers as frames of a looping animated PNG with the
// given per-frame delay in seconds. Used to visualise a pipeline stage by
// stage: original first, then the buffer after each filter.
func Animate(frames []*raster.Buffer, frameDelay float64) ([]byte, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames to animate")
	}

	a := apng.APNG{
		Frames:    make([]apng.Frame, len(frames)),
		LoopCount: 0,
	}
	for i, frame := range frames {
		a.Frames[i] = apng.Frame{
			Image:            ToImage(frame),
			DelayNumerator:   uint16(frameDelay * 1000),
			DelayDenominator: 1000,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
