package internal

import (
	"fmt"
	"log"
	"os"
	"os/exec"
)

// OptimizerAvailable reports whether the external ffmpeg encoder is on PATH.
func OptimizerAvailable() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// Optimize re-encodes the PNG at path through an external ffmpeg process to
// shrink the file size. The output is written to a temporary file first and
// renamed over the original only on success, so a failed run never corrupts
// the processed image.
func Optimize(path string) error {
	tmpPath := path + ".opt.tmp.png"

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", path,
		"-pred", "mixed",
		tmpPath,
	)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("ffmpeg failed: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s with optimized output: %w", path, err)
	}

	log.Printf("Optimized %s via ffmpeg", path)
	return nil
}
