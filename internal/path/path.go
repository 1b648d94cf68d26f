package path

import "math"

// Point is a single world-space sample on an animation path. Rotation and
// Scale travel alongside the position for box-type layers. IsControl marks a
// sample that coincides with an original user-authored control point,
// Highlighted marks a user-forced hard corner.
type Point struct {
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	Rotation    float64 `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Scale       float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
	Highlighted bool    `yaml:"highlighted,omitempty" json:"-"`
	IsControl   bool    `yaml:"-" json:"-"`
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both coordinates are regular numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Lerp interpolates position and rotation between a and b. The semantic tags
// and scale are carried from a: they describe the segment start, not a blend.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X:        a.X + (b.X-a.X)*t,
		Y:        a.Y + (b.Y-a.Y)*t,
		Rotation: a.Rotation + (b.Rotation-a.Rotation)*t,
		Scale:    a.Scale,
	}
}

// Clone returns an independent copy of pts. Every transform in the pipeline
// produces a fresh slice; nothing mutates its input.
func Clone(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Length returns the total arc length of the polyline.
func Length(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}

// Rotate returns a copy of pts rotated by degrees around the about point.
// Only positions rotate; the Rotation tag is an independent per-point value.
func Rotate(pts []Point, degrees float64, about Point) []Point {
	out := Clone(pts)
	if degrees == 0 || len(pts) == 0 {
		return out
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	for i, p := range out {
		dx := p.X - about.X
		dy := p.Y - about.Y
		out[i].X = about.X + dx*cos - dy*sin
		out[i].Y = about.Y + dx*sin + dy*cos
	}
	return out
}

// Smooth returns a copy of pts with interior points blended toward their
// neighbors: weight s/2 per neighbor and 1-s for the point itself. Endpoints
// are never moved. s is clamped to [0, 1]; s <= 0 is a no-op.
func Smooth(pts []Point, s float64) []Point {
	out := Clone(pts)
	if s <= 0 || len(pts) < 3 {
		return out
	}
	if s > 1 {
		s = 1
	}
	half := s / 2
	for i := 1; i < len(pts)-1; i++ {
		out[i].X = pts[i-1].X*half + pts[i].X*(1-s) + pts[i+1].X*half
		out[i].Y = pts[i-1].Y*half + pts[i].Y*(1-s) + pts[i+1].Y*half
	}
	return out
}
