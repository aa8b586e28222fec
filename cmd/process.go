package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pixelbrew/filmic/internal"
	"github.com/pixelbrew/filmic/internal/imaging"
	"github.com/pixelbrew/filmic/internal/raster"
)

type ProcessOptions struct {
	InPath     string
	OutPath    string
	ConfigPath string
	Seed       uint64

	// Optional collaborators invoked around the pipeline.
	Optimize      bool   // re-encode the written PNG via ffmpeg
	AnimatePath   string // write a stage-by-stage animated PNG here
	ThumbnailPath string // write a preview thumbnail here
	ThumbnailSize int
}

// Process decodes one PNG, runs the filter pipeline over it and writes the
// result atomically, then invokes any requested collaborators.
func Process(opts ProcessOptions) error {
	stages, err := loadStages(opts.ConfigPath, opts.Seed)
	if err != nil {
		return err
	}

	inFile, err := os.Open(opts.InPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		_ = inFile.Close()
	}()

	img, err := imaging.Decode(inFile)
	if err != nil {
		return fmt.Errorf("failed to decode PNG from %s: %w", opts.InPath, err)
	}
	log.Printf("Loaded %s (%dx%d), applying %d stages", opts.InPath, img.Width(), img.Height(), len(stages))

	frames := []*raster.Buffer{img}
	out := img
	for _, s := range stages {
		next, err := out.Pipeline(s)
		if err != nil {
			return fmt.Errorf("failed to process image pipeline: %w", err)
		}
		out = next
		if opts.AnimatePath != "" {
			frames = append(frames, out)
		}
	}

	if err := writeAtomic(opts.OutPath, out); err != nil {
		return err
	}
	log.Printf("Wrote %s", opts.OutPath)

	if opts.Optimize {
		if !internal.OptimizerAvailable() {
			log.Println("ffmpeg not found on PATH, skipping optimization")
		} else if err := internal.Optimize(opts.OutPath); err != nil {
			return fmt.Errorf("failed to optimize output: %w", err)
		}
	}

	if opts.AnimatePath != "" {
		apngBytes, err := imaging.Animate(frames, 1.0)
		if err != nil {
			return fmt.Errorf("failed to build stage animation: %w", err)
		}
		if err := os.WriteFile(opts.AnimatePath, apngBytes, 0644); err != nil {
			return fmt.Errorf("failed to write stage animation: %w", err)
		}
		log.Printf("Wrote stage animation %s (%d frames)", opts.AnimatePath, len(frames))
	}

	if opts.ThumbnailPath != "" {
		thumb, err := imaging.Thumbnail(out, opts.ThumbnailSize)
		if err != nil {
			return fmt.Errorf("failed to build thumbnail: %w", err)
		}
		if err := writeAtomic(opts.ThumbnailPath, thumb); err != nil {
			return err
		}
		log.Printf("Wrote thumbnail %s (%dx%d)", opts.ThumbnailPath, thumb.Width(), thumb.Height())
	}

	return nil
}

func writeAtomic(path string, b *raster.Buffer) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "filmic-*.tmp")
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

	if err := imaging.Encode(tmpFile, b); err != nil {
		return fmt.Errorf("failed to write processed image to temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false // Successfully renamed, don't delete
	return nil
}
