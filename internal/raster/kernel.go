package raster

import (
	"fmt"
	"math"
)

// Kernel is an odd-sized square matrix of convolution weights, with an
// optional normalization divisor and offset bias. A zero Divisor means
// "sum of weights" (or 1 if that sum is zero, as for high-pass kernels
// whose weights cancel).
type Kernel struct {
	Weights [][]float64
	Divisor float64
	Bias    float64
}

// Validate checks that the kernel is non-empty, square and odd-sized, so a
// centre cell exists.
func (k Kernel) Validate() error {
	n := len(k.Weights)
	if n == 0 {
		return fmt.Errorf("empty kernel: %w", ErrInvalidKernel)
	}
	if n%2 == 0 {
		return fmt.Errorf("%dx%d kernel has no centre: %w", n, n, ErrInvalidKernel)
	}
	for _, row := range k.Weights {
		if len(row) != n {
			return fmt.Errorf("kernel is not square (%d rows, row of %d): %w", n, len(row), ErrInvalidKernel)
		}
	}
	return nil
}

// Radius returns the distance from the centre cell to the kernel edge.
func (k Kernel) Radius() int {
	return len(k.Weights) / 2
}

func (k Kernel) divisor() float64 {
	if k.Divisor != 0 {
		return k.Divisor
	}
	var sum float64
	for _, row := range k.Weights {
		for _, w := range row {
			sum += w
		}
	}
	if sum == 0 {
		return 1
	}
	return sum
}

// ClampChannel rounds v and saturates it into [0, 255]. Every filter funnels
// its channel arithmetic through this single clamp before storage.
func ClampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
