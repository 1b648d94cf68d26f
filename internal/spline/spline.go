package spline

import (
	"fmt"
	"strings"

	"github.com/ivlev/path2frames/internal/path"
)

// Interpolation selects how sparse control points are expanded into a dense
// polyline before resampling.
type Interpolation int

const (
	// Linear subdivides straight segments between control points.
	Linear Interpolation = iota
	// Cardinal fits a Catmull-Rom spline with clamped end tangents.
	Cardinal
	// Basis fits a uniform cubic B-spline with tripled end controls.
	Basis
	// Points disables densification: the raw points are the keyframes.
	Points
)

// DefaultSubdivision is the per-segment sample count used when a layer does
// not configure its own.
const DefaultSubdivision = 3

// ParseInterpolation maps a scenario string to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cardinal":
		return Cardinal, nil
	case "linear":
		return Linear, nil
	case "basis":
		return Basis, nil
	case "points":
		return Points, nil
	default:
		return Cardinal, fmt.Errorf("unknown interpolation: %q", s)
	}
}

func (in Interpolation) String() string {
	switch in {
	case Linear:
		return "linear"
	case Basis:
		return "basis"
	case Points:
		return "points"
	default:
		return "cardinal"
	}
}

// Densify expands control points into a dense polyline with subdiv samples
// per inter-control segment. Output samples that coincide with an original
// control point carry IsControl=true so the resampler can recover the
// breakpoints; for Basis only the corner-forced (highlighted or end) controls
// are reachable and therefore marked.
func Densify(pts []path.Point, mode Interpolation, subdiv int) []path.Point {
	if subdiv < 1 {
		subdiv = DefaultSubdivision
	}
	if mode == Points || len(pts) < 2 {
		out := path.Clone(pts)
		for i := range out {
			out[i].IsControl = true
		}
		return out
	}

	switch mode {
	case Cardinal:
		return densifyCardinal(pts, subdiv)
	case Basis:
		return densifyBasis(pts, subdiv)
	default:
		return densifyLinear(pts, subdiv)
	}
}

func densifyLinear(pts []path.Point, subdiv int) []path.Point {
	out := make([]path.Point, 0, (len(pts)-1)*subdiv+1)
	for i := 0; i < len(pts)-1; i++ {
		for k := 0; k < subdiv; k++ {
			sample := path.Lerp(pts[i], pts[i+1], float64(k)/float64(subdiv))
			if k == 0 {
				sample = pts[i]
				sample.IsControl = true
			}
			out = append(out, sample)
		}
	}
	last := pts[len(pts)-1]
	last.IsControl = true
	return append(out, last)
}

func densifyCardinal(pts []path.Point, subdiv int) []path.Point {
	// Highlighted points are doubled in the control sequence, which collapses
	// the tangent at that point and forces a C0 corner.
	ctrl := make([]path.Point, 0, len(pts)+2)
	ctrl = append(ctrl, pts[0])
	for _, p := range pts {
		ctrl = append(ctrl, p)
		if p.Highlighted {
			ctrl = append(ctrl, p)
		}
	}
	ctrl = append(ctrl, pts[len(pts)-1])

	out := make([]path.Point, 0, (len(ctrl)-3)*subdiv+1)
	for i := 0; i+3 < len(ctrl); i++ {
		p0, p1, p2, p3 := ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]
		if p1.X == p2.X && p1.Y == p2.Y {
			continue // zero-length window from a doubled corner
		}
		for k := 0; k < subdiv; k++ {
			t := float64(k) / float64(subdiv)
			var sample path.Point
			if k == 0 {
				// Catmull-Rom interpolates its controls; the window start is p1.
				sample = p1
				sample.IsControl = true
			} else {
				sample = path.Point{
					X:        catmullRom(p0.X, p1.X, p2.X, p3.X, t),
					Y:        catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
					Rotation: p1.Rotation + (p2.Rotation-p1.Rotation)*t,
					Scale:    p1.Scale,
				}
			}
			out = append(out, sample)
		}
	}
	last := pts[len(pts)-1]
	last.IsControl = true
	return append(out, last)
}

func densifyBasis(pts []path.Point, subdiv int) []path.Point {
	// A uniform B-spline only interpolates a control that appears three times
	// in a row, so ends are tripled for clamping and highlighted points are
	// tripled to force the corner.
	ctrl := make([]path.Point, 0, len(pts)+4)
	ctrl = append(ctrl, pts[0], pts[0])
	for _, p := range pts {
		ctrl = append(ctrl, p)
		if p.Highlighted {
			ctrl = append(ctrl, p, p)
		}
	}
	ctrl = append(ctrl, pts[len(pts)-1], pts[len(pts)-1])

	out := make([]path.Point, 0, (len(ctrl)-3)*subdiv+1)
	for i := 0; i+3 < len(ctrl); i++ {
		p0, p1, p2, p3 := ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]
		interpolated := p0.X == p1.X && p0.Y == p1.Y && p1.X == p2.X && p1.Y == p2.Y
		for k := 0; k < subdiv; k++ {
			t := float64(k) / float64(subdiv)
			var sample path.Point
			if k == 0 && interpolated {
				// (p+4p+p)/6 == p: the window start hits the control exactly.
				sample = p1
				sample.IsControl = true
			} else {
				sample = path.Point{
					X:        basis(p0.X, p1.X, p2.X, p3.X, t),
					Y:        basis(p0.Y, p1.Y, p2.Y, p3.Y, t),
					Rotation: p1.Rotation + (p2.Rotation-p1.Rotation)*t,
					Scale:    p1.Scale,
				}
			}
			out = append(out, sample)
		}
	}
	last := pts[len(pts)-1]
	last.IsControl = true
	return append(out, last)
}

// catmullRom evaluates the Catmull-Rom basis for one coordinate at t in [0,1].
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-p0-3*p2+p3)*t3)
}

// basis evaluates the uniform cubic B-spline basis for one coordinate at t.
func basis(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	omt := 1 - t
	return (omt*omt*omt*p0 +
		(3*t3-6*t2+4)*p1 +
		(-3*t3+3*t2+3*t+1)*p2 +
		t3*p3) / 6
}
