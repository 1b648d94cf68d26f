package easing

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects one of the five easing families. All of them map normalized
// time t in [0,1] to eased time in [0,1] and reduce to the classic quadratic
// curves at strength 1.
type Kind int

const (
	Linear Kind = iota
	In
	Out
	InOut
	OutIn
)

// ParseKind maps a scenario string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "ease_in", "in":
		return In, nil
	case "ease_out", "out":
		return Out, nil
	case "ease_in_out", "in_out":
		return InOut, nil
	case "ease_out_in", "out_in":
		return OutIn, nil
	default:
		return Linear, fmt.Errorf("unknown easing function: %q", s)
	}
}

func (k Kind) String() string {
	switch k {
	case In:
		return "ease_in"
	case Out:
		return "ease_out"
	case InOut:
		return "ease_in_out"
	case OutIn:
		return "ease_out_in"
	default:
		return "linear"
	}
}

// Inverse returns the kind used for odd segments under Alternate
// segmentation: in and out swap, in_out and out_in swap, linear is its own
// inverse.
func (k Kind) Inverse() Kind {
	switch k {
	case In:
		return Out
	case Out:
		return In
	case InOut:
		return OutIn
	case OutIn:
		return InOut
	default:
		return Linear
	}
}

// Apply evaluates the easing curve at t with the given strength. t is clamped
// to [0,1]; a non-positive strength falls back to 1.
func (k Kind) Apply(t, strength float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if strength <= 0 {
		strength = 1
	}
	e := 2 * strength
	switch k {
	case In:
		return math.Pow(t, e)
	case Out:
		return 1 - math.Pow(1-t, e)
	case InOut:
		if t < 0.5 {
			return math.Pow(2, e-1) * math.Pow(t, e)
		}
		return 1 - math.Pow(2, e-1)*math.Pow(1-t, e)
	case OutIn:
		if t < 0.5 {
			return 0.5 * (1 - math.Pow(1-2*t, e))
		}
		return 0.5 + 0.5*math.Pow(2*t-1, e)
	default:
		return t
	}
}

// Segmentation controls how an easing curve is applied along a path.
type Segmentation int

const (
	// Full treats the whole path as one timing unit.
	Full Segmentation = iota
	// Each restarts the easing curve on every inter-control segment.
	Each
	// Alternate is Each with the inverse kind on odd segments.
	Alternate
)

// ParseSegmentation maps a scenario string to a Segmentation.
func ParseSegmentation(s string) (Segmentation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return Full, nil
	case "each":
		return Each, nil
	case "alternate":
		return Alternate, nil
	default:
		return Full, fmt.Errorf("unknown easing segmentation: %q", s)
	}
}

func (s Segmentation) String() string {
	switch s {
	case Each:
		return "each"
	case Alternate:
		return "alternate"
	default:
		return "full"
	}
}

// Config is the per-layer easing setup consumed by the resampler.
type Config struct {
	Function     Kind
	Segmentation Segmentation
	Strength     float64
}

// DefaultConfig is linear easing over the full path.
func DefaultConfig() Config {
	return Config{Function: Linear, Segmentation: Full, Strength: 1}
}
