package timing

import (
	"testing"

	"github.com/ivlev/path2frames/internal/path"
)

func run(n int) []path.Point {
	pts := make([]path.Point, n)
	for i := range pts {
		pts[i] = path.Point{X: float64(i)}
	}
	return pts
}

func TestAnimatedFrames(t *testing.T) {
	cases := []struct {
		total, start, end, want int
	}{
		{10, 0, 0, 10},
		{10, 2, 3, 5},
		{10, 6, 6, 1},
		{1, 0, 0, 1},
		{5, 5, 5, 1},
	}
	for _, c := range cases {
		if got := AnimatedFrames(c.total, c.start, c.end); got != c.want {
			t.Errorf("AnimatedFrames(%d,%d,%d) = %d, want %d",
				c.total, c.start, c.end, got, c.want)
		}
	}
}

func TestApplyOffsetPositive(t *testing.T) {
	out, start, end := ApplyOffset(run(5), 2, 1, 1)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if start != 3 || end != 1 {
		t.Errorf("pauses = (%d, %d), want (3, 1)", start, end)
	}
	if out[len(out)-1].X != 2 {
		t.Errorf("last sample X = %v, want 2 after trailing trim", out[len(out)-1].X)
	}
}

func TestApplyOffsetNegative(t *testing.T) {
	out, start, end := ApplyOffset(run(5), -2, 1, 1)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if start != 1 || end != 3 {
		t.Errorf("pauses = (%d, %d), want (1, 3)", start, end)
	}
}

func TestApplyOffsetClamped(t *testing.T) {
	out, start, _ := ApplyOffset(run(4), 99, 0, 0)

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1 surviving sample", len(out))
	}
	if start != 3 {
		t.Errorf("start pause = %d, want 3", start)
	}
}

func TestApplyOffsetNoOp(t *testing.T) {
	pts := run(5)
	out, start, end := ApplyOffset(pts, 0, 2, 2)
	if len(out) != 5 || start != 2 || end != 2 {
		t.Errorf("zero offset changed the path: len=%d pauses=(%d,%d)", len(out), start, end)
	}

	out, start, end = ApplyOffset(nil, 3, 1, 1)
	if out != nil || start != 1 || end != 1 {
		t.Errorf("empty path: got len=%d pauses=(%d,%d), want untouched", len(out), start, end)
	}
}

func TestApplyOffsetAccounting(t *testing.T) {
	// Trimmed samples become pause frames: the per-layer frame total is
	// conserved for any offset sign and magnitude.
	for _, offset := range []int{-7, -3, -1, 1, 3, 7} {
		pts := run(6)
		start, end := 2, 1
		before := len(pts) + start + end

		out, s, e := ApplyOffset(pts, offset, start, end)
		if after := len(out) + s + e; after != before {
			t.Errorf("offset %d: accounting %d -> %d, frames gained or lost", offset, before, after)
		}
	}
}

func TestExpandHolds(t *testing.T) {
	out := Expand(run(5), 9, 2, 2)

	if len(out) != 9 {
		t.Fatalf("len = %d, want 9", len(out))
	}
	wantX := []float64{0, 0, 0, 1, 2, 3, 4, 4, 4}
	for i, p := range out {
		if p.X != wantX[i] {
			t.Errorf("frame %d: X = %v, want %v", i, p.X, wantX[i])
		}
	}
}

func TestExpandShortPathClamps(t *testing.T) {
	// Accounting says 6 animated frames but only 3 samples exist; indexing
	// must clamp instead of running off the end.
	out := Expand(run(3), 8, 1, 1)
	for i, p := range out {
		if p.X < 0 || p.X > 2 {
			t.Errorf("frame %d: X = %v outside the sample range", i, p.X)
		}
	}
	if out[7].X != 2 {
		t.Errorf("final frame X = %v, want the last sample held", out[7].X)
	}
}

func TestFrameIndexBounds(t *testing.T) {
	cases := []struct {
		frame, total, start, end, n, want int
	}{
		{0, 10, 3, 2, 5, 0},
		{2, 10, 3, 2, 5, 0},
		{3, 10, 3, 2, 5, 0},
		{7, 10, 3, 2, 5, 4},
		{8, 10, 3, 2, 5, 4},
		{9, 10, 3, 2, 5, 4},
		{5, 10, 3, 2, 5, 2},
		{4, 10, 0, 0, 3, 2},
		{0, 1, 0, 0, 0, 0},
	}
	for _, c := range cases {
		got := FrameIndex(c.frame, c.total, c.start, c.end, c.n)
		if got != c.want {
			t.Errorf("FrameIndex(frame=%d,total=%d,start=%d,end=%d,n=%d) = %d, want %d",
				c.frame, c.total, c.start, c.end, c.n, got, c.want)
		}
	}
}
