package contour

import "math"

// SmoothOptions controls the moving-average smoother.
type SmoothOptions struct {
	// Iterations is the number of full smoothing passes. Zero or
	// negative leaves the path untouched.
	Iterations int

	// Window is the averaging window size in points. It is clamped to a
	// minimum of 3 and forced odd so the window centers on each point.
	Window int

	// Closed treats the path as a ring: the window wraps around the
	// ends. When false, window positions beyond either end are simply
	// excluded from the average.
	Closed bool
}

// Smooth applies an iterated centered moving average to a pixel path
// and returns the smoothed copy. All passes run on float coordinates so
// sub-pixel positions accumulate across iterations; only after the last
// pass are coordinates rounded back to the integer grid, consecutive
// duplicate points collapsed, and, for closed paths, a trailing point
// equal to the first dropped. The input slice is not modified.
func Smooth(points []Point, opts SmoothOptions) []Point {
	if len(points) < 3 || opts.Iterations <= 0 {
		return append([]Point(nil), points...)
	}

	window := opts.Window
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	half := window / 2

	n := len(points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}

	nxs := make([]float64, n)
	nys := make([]float64, n)
	for it := 0; it < opts.Iterations; it++ {
		for i := 0; i < n; i++ {
			var sx, sy float64
			m := 0
			for off := -half; off <= half; off++ {
				j := i + off
				if opts.Closed {
					j = ((j % n) + n) % n
				} else if j < 0 || j >= n {
					continue
				}
				sx += xs[j]
				sy += ys[j]
				m++
			}
			nxs[i] = sx / float64(m)
			nys[i] = sy / float64(m)
		}
		xs, nxs = nxs, xs
		ys, nys = nys, ys
	}

	out := make([]Point, n)
	for i := range out {
		out[i] = Point{
			X: int(math.Round(xs[i])),
			Y: int(math.Round(ys[i])),
		}
	}
	return dedupe(out, opts.Closed)
}

// dedupe collapses runs of identical consecutive points. For closed
// paths it also drops a final point that duplicates the first, since
// closure is implicit.
func dedupe(points []Point, closed bool) []Point {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
