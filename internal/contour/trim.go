package contour

// TrimOptions controls closure detection and trailing-tail trimming.
type TrimOptions struct {
	// Warmup is the number of leading points exempt from the closure
	// test, so a path that lingers near its origin before departing is
	// not truncated immediately.
	Warmup int

	// DistSqThreshold is the squared pixel distance within which a point
	// counts as having returned to the start. Zero or negative selects
	// the default of 2, which admits diagonal pixel adjacency.
	DistSqThreshold int

	// AppendStart, when set, appends an explicit copy of the first point
	// to a trimmed path so consumers that expect coincident endpoints
	// need no special casing.
	AppendStart bool
}

// TrimClosure scans an ordered path for the first point that has come
// back within threshold distance of the start and cuts off everything
// after it, discarding the noisy tail a greedy ordering leaves behind
// once the true perimeter is complete. The returned flag reports
// whether closure was actually detected; an open path comes back
// unmodified with false.
//
// A candidate must clear both the warmup count and the halfway mark of
// the path. The midpoint gate keeps small contours from self-closing on
// their own early points: returning to the start before half the points
// are consumed means the path is doubling back, not finishing a loop.
// The input slice is not modified.
func TrimClosure(points []Point, opts TrimOptions) ([]Point, bool) {
	threshold := opts.DistSqThreshold
	if threshold <= 0 {
		threshold = 2
	}

	if len(points) < 3 {
		return append([]Point(nil), points...), false
	}

	for i := 1; i < len(points); i++ {
		if i <= opts.Warmup || i <= len(points)/2 {
			continue
		}
		if distSq(points[i], points[0]) <= threshold {
			out := append([]Point(nil), points[:i+1]...)
			if opts.AppendStart && out[len(out)-1] != points[0] {
				out = append(out, points[0])
			}
			return out, true
		}
	}
	return append([]Point(nil), points...), false
}
