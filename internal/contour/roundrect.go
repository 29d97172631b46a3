package contour

import "math"

// RoundedRect builds a clockwise closed polygon for a w by h pixel
// canvas with quarter-circle corner arcs of the given radius, sampled
// with segments line segments per corner. The radius is clamped to half
// the shorter side minus one pixel; a radius at or below half a pixel
// degenerates to the plain 4-corner rectangle. Straight edges between
// arcs carry no intermediate points.
//
// The polygon is purely parametric. It is not derived from any raster
// content, which makes it suitable for a fixed outer cutline around
// arbitrary artwork.
func RoundedRect(w, h int, radius float64, segments int) []Point {
	maxRadius := float64(min(w, h))/2 - 1
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius <= 0.5 {
		return []Point{
			{X: 0, Y: 0},
			{X: w - 1, Y: 0},
			{X: w - 1, Y: h - 1},
			{X: 0, Y: h - 1},
		}
	}
	if segments < 1 {
		segments = 1
	}

	// Corner arc centers and start angles, clockwise from top-left in
	// screen coordinates (y grows downward).
	corners := [4]struct {
		cx, cy, startDeg float64
	}{
		{radius, radius, 180},
		{float64(w-1) - radius, radius, 270},
		{float64(w-1) - radius, float64(h-1) - radius, 0},
		{radius, float64(h-1) - radius, 90},
	}

	points := make([]Point, 0, 4*(segments+1))
	for _, c := range corners {
		for s := 0; s <= segments; s++ {
			theta := (c.startDeg + 90*float64(s)/float64(segments)) * math.Pi / 180
			points = append(points, Point{
				X: int(math.Round(c.cx + radius*math.Cos(theta))),
				Y: int(math.Round(c.cy + radius*math.Sin(theta))),
			})
		}
	}
	return dedupe(points, true)
}

// FrameBoundary wraps a rounded-rectangle cutline in a BoundaryInfo so
// it can travel alongside segmented components. Its snapshot metrics
// describe the whole canvas rather than any pixel population: full
// canvas bbox, area w times h, and the geometric center as the median.
func FrameBoundary(id, w, h int, radius float64, segments int) *BoundaryInfo {
	return &BoundaryInfo{
		ID:             id,
		IsHole:         false,
		BoundaryPixels: RoundedRect(w, h, radius, segments),
		Bbox:           Bounds{X1: 0, Y1: 0, X2: w - 1, Y2: h - 1},
		AreaPixels:     w * h,
		MedianXY:       Point{X: (w - 1) / 2, Y: (h - 1) / 2},
	}
}
