package scenario

import (
	"github.com/ivlev/path2frames/internal/easing"
	"github.com/ivlev/path2frames/internal/path"
	"github.com/ivlev/path2frames/internal/spline"
)

// Scenario represents a complete multi-layer animation request
type Scenario struct {
	Version     string  `yaml:"version"`
	TotalFrames int     `yaml:"total_frames"`
	Layers      []Layer `yaml:"layers"`
}

// Layer describes one named path and how it is played back
type Layer struct {
	Name          string       `yaml:"name"`
	Points        []path.Point `yaml:"points"`
	Interpolation string       `yaml:"interpolation,omitempty"` // linear | cardinal | basis | points
	Subdivision   int          `yaml:"subdivision,omitempty"`   // samples per spline segment
	Easing        EasingSpec   `yaml:"easing,omitempty"`
	Timing        TimingSpec   `yaml:"timing,omitempty"`
	Driver        *DriverSpec  `yaml:"driver,omitempty"`

	// Filled in by Validate so the engine never re-parses strings.
	Mode  spline.Interpolation `yaml:"-"`
	Curve easing.Config        `yaml:"-"`
}

// EasingSpec selects the easing curve for a layer
type EasingSpec struct {
	Function     string  `yaml:"function,omitempty"`     // linear | ease_in | ease_out | ease_in_out | ease_out_in
	Segmentation string  `yaml:"segmentation,omitempty"` // full | each | alternate
	Strength     float64 `yaml:"strength,omitempty"`     // 0 means 1.0
}

// TimingSpec holds the pause/offset/acceleration playback settings
type TimingSpec struct {
	StartPause   int     `yaml:"start_pause,omitempty"`  // frames held on the first sample
	EndPause     int     `yaml:"end_pause,omitempty"`    // frames held on the last sample
	Offset       int     `yaml:"offset,omitempty"`       // trailing samples traded for pause frames
	Acceleration float64 `yaml:"acceleration,omitempty"` // [-1,1], power-law time warp
}

// DriverSpec makes a layer inherit motion from another layer
type DriverSpec struct {
	Target        string  `yaml:"target"`
	RotateDegrees float64 `yaml:"rotate_degrees,omitempty"` // rotate the driver path before inheriting
	Smooth        float64 `yaml:"smooth,omitempty"`         // [0,1], neighbor blend on the driver path
	DeltaScale    float64 `yaml:"delta_scale,omitempty"`    // 0 means 1.0
}
