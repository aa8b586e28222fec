package raster

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelRowsCoversEveryRowOnce(t *testing.T) {
	for _, height := range []int{1, 2, 7, 64, 1000} {
		var mu sync.Mutex
		seen := make(map[int]int)

		ParallelRows(height, func(yStart, yEnd int) {
			assert.LessOrEqual(t, yStart, yEnd)
			mu.Lock()
			defer mu.Unlock()
			for y := yStart; y < yEnd; y++ {
				seen[y]++
			}
		})

		assert.Len(t, seen, height, "height=%d", height)
		for y, n := range seen {
			assert.Equal(t, 1, n, "row %d visited %d times", y, n)
		}
	}
}
