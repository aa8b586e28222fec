package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/pixelbrew/filmic/internal"
)

// Watch repeatedly scans the input directory on a fixed interval and runs
// the filter pipeline over any PNGs that have not been processed yet. The
// first scan runs up front so a misconfigured pipeline fails immediately.
// Blocks until interrupted.
func Watch(inDir, outDir, configPath string, every time.Duration, poolSize int, seed uint64) error {
	internal.ShowVersion()

	stages, err := loadStages(configPath, seed)
	if err != nil {
		return err
	}

	scan := func() {
		processor, err := internal.NewProcessor(inDir, outDir, poolSize, stages)
		if err != nil {
			log.Printf("Scan skipped: %v", err)
			return
		}
		processor.StartWorkers()
		processor.DispatchJobs()
		for _, err := range processor.Wait() {
			log.Printf("Error: %v", err)
		}
	}
	scan()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if _, err := scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(scan),
	); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	scheduler.Start()
	log.Printf("Watching %s every %s", inDir, every)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	return nil
}
