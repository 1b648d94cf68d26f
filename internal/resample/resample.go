package resample

import (
	"errors"
	"math"
	"sort"

	"github.com/ivlev/path2frames/internal/easing"
	"github.com/ivlev/path2frames/internal/path"
)

var (
	// ErrInvalidFrameCount is returned when the requested frame count is not positive.
	ErrInvalidFrameCount = errors.New("resample: frame count must be positive")
	// ErrEmptyPath is returned when there are no points to resample.
	ErrEmptyPath = errors.New("resample: empty path")
)

// minSegment floors zero-length segments so cumulative-length lookups never
// divide by zero.
const minSegment = 1e-9

// Resample redistributes a polyline into exactly frames output points, spaced
// by arc length and warped by the easing configuration. Segmentation Full
// treats the whole path as one timing unit; Each and Alternate ease every
// inter-control span on its own, with Alternate flipping to the inverse easing
// kind on odd spans. The first and last outputs always equal the first and
// last inputs exactly.
func Resample(pts []path.Point, frames int, cfg easing.Config) ([]path.Point, error) {
	if frames <= 0 {
		return nil, ErrInvalidFrameCount
	}
	if len(pts) == 0 {
		return nil, ErrEmptyPath
	}
	if frames == 1 || len(pts) == 1 {
		out := make([]path.Point, frames)
		for i := range out {
			out[i] = pts[0]
		}
		return out, nil
	}

	out := make([]path.Point, 0, frames)
	out = append(out, pts[0])

	if cfg.Segmentation == easing.Full {
		cum, total := cumulative(pts, 0, len(pts)-1)
		for i := 1; i < frames-1; i++ {
			t := cfg.Function.Apply(float64(i)/float64(frames-1), cfg.Strength)
			out = append(out, sampleAt(pts, 0, cum, t*total))
		}
	} else {
		bounds := majorBounds(pts)
		segs := make([]segmentTable, len(bounds)-1)
		total := 0.0
		for k := range segs {
			cum, length := cumulative(pts, bounds[k], bounds[k+1])
			segs[k] = segmentTable{start: bounds[k], cum: cum, length: length}
			total += length
		}
		for k, budget := range distribute(segs, total, frames-1) {
			kind := cfg.Function
			if cfg.Segmentation == easing.Alternate && k%2 == 1 {
				kind = kind.Inverse()
			}
			seg := segs[k]
			for j := 0; j < budget; j++ {
				t := kind.Apply(float64(j+1)/float64(budget), cfg.Strength)
				out = append(out, sampleAt(pts, seg.start, seg.cum, t*seg.length))
			}
		}
	}

	if len(out) < frames {
		out = append(out, pts[len(pts)-1])
	}
	out[frames-1] = pts[len(pts)-1]
	return out, nil
}

type segmentTable struct {
	start  int
	cum    []float64
	length float64
}

// majorBounds returns the indices that split the path into major segments:
// control-flagged samples, or every point when nothing is flagged.
func majorBounds(pts []path.Point) []int {
	marked := false
	bounds := []int{0}
	for i := 1; i < len(pts)-1; i++ {
		if pts[i].IsControl {
			bounds = append(bounds, i)
		}
	}
	for _, p := range pts {
		if p.IsControl {
			marked = true
			break
		}
	}
	if !marked && len(pts) > 2 {
		bounds = bounds[:1]
		for i := 1; i < len(pts)-1; i++ {
			bounds = append(bounds, i)
		}
	}
	return append(bounds, len(pts)-1)
}

// cumulative builds the running arc-length table over pts[a..b].
func cumulative(pts []path.Point, a, b int) ([]float64, float64) {
	cum := make([]float64, b-a+1)
	for i := a; i < b; i++ {
		d := pts[i].Distance(pts[i+1])
		if d < minSegment {
			d = minSegment
		}
		cum[i-a+1] = cum[i-a] + d
	}
	return cum, cum[len(cum)-1]
}

// distribute splits budget frames across segments proportionally to arc
// length, using the largest-remainder method so the counts sum exactly.
// Remainder ties go to the earlier segment.
func distribute(segs []segmentTable, total float64, budget int) []int {
	counts := make([]int, len(segs))
	if budget <= 0 || total <= 0 {
		return counts
	}
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, len(segs))
	assigned := 0
	for k, seg := range segs {
		share := float64(budget) * seg.length / total
		counts[k] = int(share)
		assigned += counts[k]
		rems[k] = rem{idx: k, frac: share - float64(counts[k])}
	}
	// Fractional parts sum to budget-assigned, which is always below the
	// segment count.
	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for i := 0; i < budget-assigned; i++ {
		counts[rems[i].idx]++
	}
	return counts
}

// sampleAt locates the micro-segment containing distance d and interpolates
// within it.
func sampleAt(pts []path.Point, start int, cum []float64, d float64) path.Point {
	n := len(cum)
	if d <= 0 {
		return pts[start]
	}
	if d >= cum[n-1] {
		return pts[start+n-1]
	}
	i := sort.SearchFloat64s(cum, d)
	if i == 0 {
		i = 1
	}
	t := (d - cum[i-1]) / (cum[i] - cum[i-1])
	return path.Lerp(pts[start+i-1], pts[start+i], t)
}

// Accelerate applies a power-law time remap on top of an already resampled
// path: positive values front-load the motion (ease-out feel), negative
// values back-load it (ease-in feel). Magnitudes below 0.001 are a no-op and
// the input slice is returned as is; endpoints stay pinned regardless.
func Accelerate(pts []path.Point, accel float64) []path.Point {
	n := len(pts)
	if n < 2 || math.Abs(accel) < 0.001 {
		return pts
	}
	if accel > 0.99 {
		accel = 0.99
	} else if accel < -0.99 {
		accel = -0.99
	}
	exponent := 1 - accel

	out := make([]path.Point, n)
	out[0] = pts[0]
	out[n-1] = pts[n-1]
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		u := math.Pow(t, exponent) * float64(n-1)
		lo := int(u)
		if lo > n-2 {
			lo = n - 2
		}
		out[i] = path.Lerp(pts[lo], pts[lo+1], u-float64(lo))
	}
	return out
}
