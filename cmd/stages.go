package cmd

import (
	"fmt"
	"os"

	"github.com/pixelbrew/filmic/internal/raster"
	"github.com/pixelbrew/filmic/internal/raster/stage"
)

// defaultStages is the stock "filmic" treatment applied when no pipeline
// config is supplied: grain, colour enhancement, glow, then sharpen.
func defaultStages(seed uint64) []raster.Stage {
	return []raster.Stage{
		&stage.GrainStage{Intensity: stage.DefaultGrainIntensity, Seed: seed},
		&stage.ColorEnhanceStage{Factor: stage.DefaultEnhanceFactor},
		&stage.GlowStage{Radius: stage.DefaultGlowRadius, Strength: stage.DefaultGlowStrength},
		&stage.SharpenStage{},
	}
}

// loadStages builds the stage list from a JSON pipeline config, falling back
// to the default treatment when no config path is given.
func loadStages(configPath string, seed uint64) ([]raster.Stage, error) {
	if configPath == "" {
		return defaultStages(seed), nil
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pipeline config: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	stages, err := stage.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config %s: %w", configPath, err)
	}
	return stages, nil
}
