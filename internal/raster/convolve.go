package raster

// Convolve applies the kernel to every pixel of in and returns a new buffer
// of identical dimensions. Each colour channel is convolved independently;
// alpha passes through unmodified. Border pixels use edge-replication (see
// Buffer.Clamped). The operation is pure: in is never mutated and repeated
// invocations yield identical results.
func Convolve(in *Buffer, k Kernel) (*Buffer, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	out, err := New(in.Width(), in.Height())
	if err != nil {
		return nil, err
	}

	radius := k.Radius()
	div := k.divisor()

	ParallelRows(in.Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < in.Width(); x++ {
				var sumR, sumG, sumB float64
				for dy := -radius; dy <= radius; dy++ {
					for dx := -radius; dx <= radius; dx++ {
						p := in.Clamped(x+dx, y+dy)
						w := k.Weights[dy+radius][dx+radius]
						sumR += float64(p.R) * w
						sumG += float64(p.G) * w
						sumB += float64(p.B) * w
					}
				}
				_ = out.Set(x, y, Pixel{
					R: ClampChannel(sumR/div + k.Bias),
					G: ClampChannel(sumG/div + k.Bias),
					B: ClampChannel(sumB/div + k.Bias),
					A: in.Clamped(x, y).A,
				})
			}
		}
	})

	return out, nil
}
