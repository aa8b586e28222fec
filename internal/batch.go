package internal

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pixelbrew/filmic/internal/imaging"
	"github.com/pixelbrew/filmic/internal/raster"
)

// Processor runs the configured filter pipeline over every PNG in a
// directory using a fixed-size worker pool. Each file is an independent job;
// one file failing does not stop the others.
type Processor struct {
	startTime time.Time
	endTime   time.Time
	inDir     string
	outDir    string
	poolSize  int
	jobs      chan string
	results   chan error
	files     []string
	stages    []raster.Stage
}

func NewProcessor(inDir, outDir string, poolSize int, stages []raster.Stage) (*Processor, error) {
	if poolSize < 1 {
		return nil, errors.New("pool size must be at least 1")
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", inDir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		files = append(files, entry.Name())
	}
	log.Printf("Directory %s contains %d PNG files", inDir, len(files))
	if len(files) == 0 {
		return nil, errors.New("no files to process")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	return &Processor{
		startTime: time.Now(),
		inDir:     inDir,
		outDir:    outDir,
		poolSize:  poolSize,
		jobs:      make(chan string),
		results:   make(chan error),
		files:     files,
		stages:    stages,
	}, nil
}

// DispatchJobs sends file names to the jobs channel for processing by
// workers, then closes the channel.
func (p *Processor) DispatchJobs() {
	go func() {
		for _, name := range p.files {
			p.jobs <- name
		}
		close(p.jobs)
	}()
}

func (p *Processor) StartWorkers() {
	log.Printf("Starting processing files with pool size: %d", p.poolSize)
	for i := range p.poolSize {
		go p.worker(i)
	}
}

func (p *Processor) worker(i int) {
	log.Printf("Worker %d started", i)
	for name := range p.jobs {
		p.results <- p.processFile(name)
	}
	log.Printf("Worker %d finished", i)
}

func (p *Processor) processFile(name string) error {
	outName := filepath.Join(p.outDir, name)

	// if the output already exists, skip processing
	if _, err := os.Stat(outName); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	inFile, err := os.Open(filepath.Join(p.inDir, name))
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		_ = inFile.Close()
	}()

	img, err := imaging.Decode(inFile)
	if err != nil {
		return fmt.Errorf("failed to decode PNG from %s: %w", name, err)
	}

	out, err := img.Pipeline(p.stages...)
	if err != nil {
		return fmt.Errorf("failed to process image pipeline for %s: %w", name, err)
	}

	tmpFile, err := os.CreateTemp(p.outDir, "filmic-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := imaging.Encode(tmpFile, out); err != nil {
		return fmt.Errorf("failed to write processed image to temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), outName); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false // Successfully renamed, don't delete
	return nil
}

// Wait blocks until every dispatched job has reported, collecting failures.
func (p *Processor) Wait() []error {
	log.Printf("Waiting for %d files to be processed", len(p.files))

	errs := make([]error, 0, 10)
	for range p.files {
		if err := <-p.results; err != nil {
			errs = append(errs, err)
		}
	}
	p.endTime = time.Now()
	log.Printf("All files processed in %s (errors=%d)", p.endTime.Sub(p.startTime), len(errs))
	return errs
}
