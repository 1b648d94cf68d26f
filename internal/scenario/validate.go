package scenario

import (
	"errors"
	"fmt"
	"log"

	"github.com/ivlev/path2frames/internal/easing"
	"github.com/ivlev/path2frames/internal/spline"
)

var (
	ErrInvalidFrameCount = errors.New("scenario: total_frames must be positive")
	ErrEmptyPath         = errors.New("scenario: layer has no points")
	ErrSelfDrive         = errors.New("scenario: layer drives itself")
	ErrDuplicateName     = errors.New("scenario: duplicate layer name")
)

// Validate normalizes the scenario in place so the engine never has to parse
// strings or fill defaults mid-pipeline: enum fields become Mode/Curve,
// missing values get their defaults, non-finite points are dropped with a
// warning, and a layer left with no usable points is removed from the scene.
// Fatal are the author errors that make the request ambiguous: a non-positive
// frame total, an explicitly empty layer, duplicate names, and self-driving.
func (s *Scenario) Validate() error {
	if s.TotalFrames <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameCount, s.TotalFrames)
	}

	seen := make(map[string]bool, len(s.Layers))
	kept := s.Layers[:0]
	for i := range s.Layers {
		layer := &s.Layers[i]
		if layer.Name == "" {
			return fmt.Errorf("scenario: layer %d has no name", i)
		}
		if seen[layer.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, layer.Name)
		}
		seen[layer.Name] = true
		if len(layer.Points) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyPath, layer.Name)
		}

		finite := layer.Points[:0]
		for _, p := range layer.Points {
			if !p.IsFinite() {
				log.Printf("[!] Слой %q: точка с нечисловыми координатами пропущена", layer.Name)
				continue
			}
			finite = append(finite, p)
		}
		layer.Points = finite
		if len(layer.Points) == 0 {
			log.Printf("[!] Слой %q: все точки отброшены, слой исключён из сцены", layer.Name)
			continue
		}

		mode, err := spline.ParseInterpolation(layer.Interpolation)
		if err != nil {
			return fmt.Errorf("scenario: layer %q: %w", layer.Name, err)
		}
		layer.Mode = mode
		if layer.Subdivision < 1 {
			layer.Subdivision = spline.DefaultSubdivision
		}

		fn, err := easing.ParseKind(layer.Easing.Function)
		if err != nil {
			return fmt.Errorf("scenario: layer %q: %w", layer.Name, err)
		}
		seg, err := easing.ParseSegmentation(layer.Easing.Segmentation)
		if err != nil {
			return fmt.Errorf("scenario: layer %q: %w", layer.Name, err)
		}
		strength := layer.Easing.Strength
		if strength <= 0 {
			strength = 1
		}
		layer.Curve = easing.Config{Function: fn, Segmentation: seg, Strength: strength}

		if layer.Timing.StartPause < 0 {
			layer.Timing.StartPause = 0
		}
		if layer.Timing.EndPause < 0 {
			layer.Timing.EndPause = 0
		}
		if layer.Timing.Acceleration > 1 {
			layer.Timing.Acceleration = 1
		} else if layer.Timing.Acceleration < -1 {
			layer.Timing.Acceleration = -1
		}

		if layer.Driver != nil {
			switch {
			case layer.Driver.Target == "":
				log.Printf("[!] Слой %q: драйвер без цели игнорируется", layer.Name)
				layer.Driver = nil
			case layer.Driver.Target == layer.Name:
				return fmt.Errorf("%w: %q", ErrSelfDrive, layer.Name)
			default:
				if layer.Driver.DeltaScale == 0 {
					layer.Driver.DeltaScale = 1
				}
				if layer.Driver.Smooth < 0 {
					layer.Driver.Smooth = 0
				} else if layer.Driver.Smooth > 1 {
					layer.Driver.Smooth = 1
				}
			}
		}

		kept = append(kept, *layer)
	}
	s.Layers = kept
	return nil
}
