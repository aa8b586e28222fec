package raster

// Stage is one filter in a processing pipeline. Process consumes its input
// buffer and produces a new, independently owned one; it must either return
// a fully valid buffer or an error, never a partial result.
type Stage interface {
	Name() string
	Process(in *Buffer) (*Buffer, error)
}

// Pipeline applies the stages in order, feeding each stage's output into the
// next. The first failing stage aborts the run and its error is returned
// unchanged; partial results are discarded. An empty stage list returns the
// input buffer as-is.
func (b *Buffer) Pipeline(stages ...Stage) (*Buffer, error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, ErrDimensionMismatch
	}
	out := b
	for _, stage := range stages {
		next, err := stage.Process(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
