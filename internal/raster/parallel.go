package raster

import (
	"runtime"
	"sync"
)

// ParallelRows partitions [0, height) into contiguous row bands and runs
// worker on each band from its own goroutine, returning once all bands are
// done. Output pixels depend only on a read-only neighbourhood of the input,
// so no synchronization beyond the final join is needed; workers must not
// write outside their band.
func ParallelRows(height int, worker func(yStart, yEnd int)) {
	workers := runtime.NumCPU()
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		worker(0, height)
		return
	}

	band := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for yStart := 0; yStart < height; yStart += band {
		yEnd := yStart + band
		if yEnd > height {
			yEnd = height
		}
		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			worker(yStart, yEnd)
		}(yStart, yEnd)
	}
	wg.Wait()
}
