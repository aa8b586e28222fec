package cmd

import (
	"fmt"
	"log"

	"github.com/pixelbrew/filmic/internal"
)

// Batch runs the filter pipeline over every PNG in a directory with a
// worker pool.
func Batch(inDir, outDir, configPath string, poolSize int, seed uint64) error {
	internal.ShowVersion()

	stages, err := loadStages(configPath, seed)
	if err != nil {
		return err
	}

	processor, err := internal.NewProcessor(inDir, outDir, poolSize, stages)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	processor.StartWorkers()
	processor.DispatchJobs()
	errs := processor.Wait()
	if len(errs) > 0 {
		for _, err := range errs {
			log.Printf("Error: %v", err)
		}
		return fmt.Errorf("%d files failed to process", len(errs))
	}
	return nil
}
