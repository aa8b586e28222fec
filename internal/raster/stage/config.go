package stage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pixelbrew/filmic/internal/raster"
)

// Spec describes one pipeline stage in a JSON configuration document. Only
// the fields meaningful to the named stage are read; omitted tunables fall
// back to the stage's default.
type Spec struct {
	Name      string   `json:"name"`
	Intensity *int     `json:"intensity,omitempty"`
	Seed      uint64   `json:"seed,omitempty"`
	Factor    *float64 `json:"factor,omitempty"`
	Radius    *int     `json:"radius,omitempty"`
	Strength  *float64 `json:"strength,omitempty"`
}

// Stage defaults, matching the product's stock "filmic" treatment.
const (
	DefaultGrainIntensity = 20
	DefaultEnhanceFactor  = 1.2
	DefaultGlowRadius     = 3
	DefaultGlowStrength   = 0.2
	DefaultExposureFactor = 1.0
)

// Parse reads a JSON array of stage specs and builds the ordered stage list.
// Any subset in any order is valid, including the empty list. Unknown stage
// names are rejected.
func Parse(r io.Reader) ([]raster.Stage, error) {
	var specs []Spec
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&specs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pipeline config: %w", err)
	}
	return Build(specs)
}

// Build turns already-decoded specs into stages.
func Build(specs []Spec) ([]raster.Stage, error) {
	stages := make([]raster.Stage, 0, len(specs))
	for _, spec := range specs {
		stage, err := spec.stage()
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

func (s Spec) stage() (raster.Stage, error) {
	switch s.Name {
	case "grain":
		return &GrainStage{
			Intensity: intOr(s.Intensity, DefaultGrainIntensity),
			Seed:      s.Seed,
		}, nil
	case "enhance":
		return &ColorEnhanceStage{Factor: floatOr(s.Factor, DefaultEnhanceFactor)}, nil
	case "glow":
		return &GlowStage{
			Radius:   intOr(s.Radius, DefaultGlowRadius),
			Strength: floatOr(s.Strength, DefaultGlowStrength),
		}, nil
	case "sharpen":
		return &SharpenStage{}, nil
	case "greyscale", "grayscale":
		return &GreyscaleStage{}, nil
	case "exposure":
		return &ExposureStage{Factor: floatOr(s.Factor, DefaultExposureFactor)}, nil
	default:
		return nil, fmt.Errorf("unknown stage %q", s.Name)
	}
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
