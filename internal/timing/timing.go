package timing

import "github.com/ivlev/path2frames/internal/path"

// AnimatedFrames returns how many output frames actually travel the path
// once the start and end holds are subtracted. Never below 1.
func AnimatedFrames(total, startPause, endPause int) int {
	animated := total - startPause - endPause
	if animated < 1 {
		animated = 1
	}
	return animated
}

// FrameIndex maps an output frame number to an index into an animated path of
// pathLen samples: frames inside the start hold repeat the first sample,
// frames inside the end hold repeat the last, everything between advances one
// sample per frame.
func FrameIndex(frame, total, startPause, endPause, pathLen int) int {
	if pathLen <= 0 {
		return 0
	}
	if frame < startPause {
		return 0
	}
	if frame >= total-endPause {
		return pathLen - 1
	}
	idx := frame - startPause
	if idx < 0 {
		idx = 0
	}
	if idx > pathLen-1 {
		idx = pathLen - 1
	}
	return idx
}

// ApplyOffset trims trailing samples and converts the removed duration into
// hold frames: a positive offset waits at the start and finishes early, a
// negative one finishes early and holds at the end. The magnitude is clamped
// so at least one sample survives. Returns the trimmed path and the adjusted
// pause counts; a zero offset or empty path comes back untouched.
func ApplyOffset(pts []path.Point, offset, startPause, endPause int) ([]path.Point, int, int) {
	if offset == 0 || len(pts) == 0 {
		return pts, startPause, endPause
	}
	k := offset
	if k < 0 {
		k = -k
	}
	if k > len(pts)-1 {
		k = len(pts) - 1
	}
	out := path.Clone(pts[:len(pts)-k])
	if offset > 0 {
		return out, startPause + k, endPause
	}
	return out, startPause, endPause + k
}

// Expand stretches an animated path across total output frames, repeating the
// first sample through the start hold and the last through the end hold.
func Expand(pts []path.Point, total, startPause, endPause int) []path.Point {
	if total <= 0 || len(pts) == 0 {
		return nil
	}
	out := make([]path.Point, total)
	for frame := range out {
		out[frame] = pts[FrameIndex(frame, total, startPause, endPause, len(pts))]
	}
	return out
}
