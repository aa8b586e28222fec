// Package raster provides the in-memory pixel buffer, convolution engine
// and stage pipeline used for image filtering. Decoding and encoding live
// in the imaging package; everything here operates on fully-decoded pixels.
package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a coordinate access beyond the buffer
	// dimensions. This is a programmer error, never expected from valid inputs.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidKernel indicates an even-sized, empty or non-square kernel.
	ErrInvalidKernel = errors.New("invalid kernel")

	// ErrDimensionMismatch indicates a buffer with zero width or height.
	ErrDimensionMismatch = errors.New("buffer has zero width or height")
)

// Pixel holds one RGBA picture element. All channels are already clamped
// to [0, 255] by virtue of the type.
type Pixel struct {
	R, G, B, A uint8
}

// Buffer is a dense row-major grid of pixels. A buffer is exclusively owned
// by whichever stage currently holds it: stages read their input and write
// into a freshly allocated output, they never mutate a buffer handed to them.
type Buffer struct {
	width  int
	height int
	pix    []Pixel
}

// New allocates a zeroed buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrDimensionMismatch)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// At returns the pixel at (x, y), or ErrOutOfBounds.
func (b *Buffer) At(x, y int) (Pixel, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Pixel{}, fmt.Errorf("at (%d,%d) in %dx%d: %w", x, y, b.width, b.height, ErrOutOfBounds)
	}
	return b.pix[y*b.width+x], nil
}

// Set overwrites the pixel at (x, y), or returns ErrOutOfBounds. It is only
// used while constructing a new buffer, never to mutate one already handed
// to another stage.
func (b *Buffer) Set(x, y int, p Pixel) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("set (%d,%d) in %dx%d: %w", x, y, b.width, b.height, ErrOutOfBounds)
	}
	b.pix[y*b.width+x] = p
	return nil
}

// Clamped returns the pixel at (x, y) with out-of-range coordinates clamped
// to the nearest valid pixel. This is the edge-replication border policy used
// by the convolution engine: neighbourhood lookups never darken towards zero
// and never wrap.
func (b *Buffer) Clamped(x, y int) Pixel {
	if x < 0 {
		x = 0
	} else if x >= b.width {
		x = b.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= b.height {
		y = b.height - 1
	}
	return b.pix[y*b.width+x]
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]Pixel, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Equal reports pixel-for-pixel equality with other.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, p := range b.pix {
		if p != other.pix[i] {
			return false
		}
	}
	return true
}
