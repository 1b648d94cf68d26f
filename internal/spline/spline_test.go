package spline

import (
	"math"
	"testing"

	"github.com/ivlev/path2frames/internal/path"
)

func line(n int) []path.Point {
	pts := make([]path.Point, n)
	for i := range pts {
		pts[i] = path.Point{X: float64(i), Y: 0}
	}
	return pts
}

func TestDensifyLinearCount(t *testing.T) {
	pts := line(3)
	out := Densify(pts, Linear, 3)

	if want := (len(pts)-1)*3 + 1; len(out) != want {
		t.Fatalf("sample count = %d, want %d", len(out), want)
	}
	if out[0].X != 0 || out[0].Y != 0 || !out[0].IsControl {
		t.Errorf("first sample = %+v, want control at origin", out[0])
	}
	for _, idx := range []int{0, 3, 6} {
		if !out[idx].IsControl {
			t.Errorf("sample %d: IsControl = false, want true", idx)
		}
	}
	for i, s := range out {
		if s.IsControl && i != 0 && i != 3 && i != 6 {
			t.Errorf("sample %d: unexpected control flag", i)
		}
	}
}

func TestDensifyCardinalPassesThroughControls(t *testing.T) {
	pts := []path.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 5},
		{X: 20, Y: -5},
		{X: 30, Y: 0},
	}
	out := Densify(pts, Cardinal, 4)

	next := 0
	for _, s := range out {
		if !s.IsControl {
			continue
		}
		if next >= len(pts) {
			t.Fatalf("more control samples than input points")
		}
		if s.X != pts[next].X || s.Y != pts[next].Y {
			t.Errorf("control %d = (%v, %v), want (%v, %v)",
				next, s.X, s.Y, pts[next].X, pts[next].Y)
		}
		next++
	}
	if next != len(pts) {
		t.Errorf("saw %d control samples, want %d", next, len(pts))
	}
}

func TestDensifyCardinalStraightLine(t *testing.T) {
	out := Densify(line(4), Cardinal, 5)

	prev := math.Inf(-1)
	for i, s := range out {
		if s.Y != 0 {
			t.Errorf("sample %d: Y = %v, want 0 on a straight run", i, s.Y)
		}
		if s.X < prev {
			t.Errorf("sample %d: X = %v goes backwards from %v", i, s.X, prev)
		}
		prev = s.X
	}
	if last := out[len(out)-1]; last.X != 3 {
		t.Errorf("last sample X = %v, want 3", last.X)
	}
}

func TestDensifyCardinalHighlightedCorner(t *testing.T) {
	pts := []path.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 5, Highlighted: true},
		{X: 10, Y: 0},
	}
	out := Densify(pts, Cardinal, 3)

	hits := 0
	for _, s := range out {
		if s.X == 5 && s.Y == 5 {
			hits++
			if !s.IsControl {
				t.Errorf("corner sample lost its control flag")
			}
			if !s.Highlighted {
				t.Errorf("corner sample lost its highlight flag")
			}
		}
	}
	if hits != 1 {
		t.Errorf("corner emitted %d times, want exactly once", hits)
	}
	// Doubling the corner control collapses one window, so the count matches
	// the unhighlighted case.
	if want := 2*3 + 1; len(out) != want {
		t.Errorf("sample count = %d, want %d", len(out), want)
	}
}

func TestDensifyBasisClampedEnds(t *testing.T) {
	pts := []path.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 8},
		{X: 8, Y: 0},
	}
	out := Densify(pts, Basis, 3)

	if first := out[0]; first.X != 0 || first.Y != 0 || !first.IsControl {
		t.Errorf("first sample = %+v, want clamped control at (0,0)", first)
	}
	if last := out[len(out)-1]; last.X != 8 || last.Y != 0 || !last.IsControl {
		t.Errorf("last sample = %+v, want clamped control at (8,0)", last)
	}
}

func TestDensifyBasisSmoothsInteriorPoint(t *testing.T) {
	pts := []path.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 8},
		{X: 8, Y: 0},
	}
	out := Densify(pts, Basis, 6)

	maxY := 0.0
	for _, s := range out {
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	// The basis spline approximates the interior vertex instead of passing
	// through it.
	if maxY >= 8 {
		t.Errorf("max Y = %v, want below the vertex at 8", maxY)
	}
	if maxY < 4 {
		t.Errorf("max Y = %v, curve should still be pulled toward the vertex", maxY)
	}
}

func TestDensifyBasisHighlightedInterpolated(t *testing.T) {
	pts := []path.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 8, Highlighted: true},
		{X: 8, Y: 0},
	}
	out := Densify(pts, Basis, 6)

	hits := 0
	for _, s := range out {
		if s.X == 4 && s.Y == 8 {
			hits++
			if !s.IsControl {
				t.Errorf("highlighted vertex sample not flagged as control")
			}
		}
	}
	if hits != 1 {
		t.Errorf("highlighted vertex emitted %d times, want exactly once", hits)
	}
}

func TestDensifyPointsKeepsInput(t *testing.T) {
	pts := []path.Point{
		{X: 1, Y: 2, Rotation: 45},
		{X: 3, Y: 4},
	}
	out := Densify(pts, Points, 10)

	if len(out) != len(pts) {
		t.Fatalf("sample count = %d, want %d", len(out), len(pts))
	}
	for i, s := range out {
		if s.X != pts[i].X || s.Y != pts[i].Y || s.Rotation != pts[i].Rotation {
			t.Errorf("sample %d = %+v, want %+v", i, s, pts[i])
		}
		if !s.IsControl {
			t.Errorf("sample %d: IsControl = false, want true", i)
		}
	}
}

func TestDensifySinglePoint(t *testing.T) {
	pts := []path.Point{{X: 7, Y: 7}}
	for _, mode := range []Interpolation{Linear, Cardinal, Basis, Points} {
		out := Densify(pts, mode, 3)
		if len(out) != 1 || out[0].X != 7 || !out[0].IsControl {
			t.Errorf("%s: out = %+v, want the single control back", mode, out)
		}
	}
}

func TestDensifyDefaultSubdivision(t *testing.T) {
	out := Densify(line(2), Linear, 0)
	if want := DefaultSubdivision + 1; len(out) != want {
		t.Errorf("sample count = %d, want %d with default subdivision", len(out), want)
	}
}

func TestParseInterpolation(t *testing.T) {
	cases := []struct {
		in      string
		want    Interpolation
		wantErr bool
	}{
		{"cardinal", Cardinal, false},
		{"LINEAR", Linear, false},
		{"basis", Basis, false},
		{"points", Points, false},
		{"", Cardinal, false},
		{"hermite", Cardinal, true},
	}
	for _, c := range cases {
		got, err := ParseInterpolation(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseInterpolation(%q): err = %v, wantErr = %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("ParseInterpolation(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
