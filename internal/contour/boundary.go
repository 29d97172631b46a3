package contour

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// Both corners are inclusive: (X1, Y1) is the top-left pixel and
// (X2, Y2) the bottom-right pixel actually covered.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// BoundaryInfo describes one connected component discovered in an
// occupancy grid: either a foreground object or a background hole fully
// enclosed by one.
//
// # Snapshot Metrics
//
// Bbox, AreaPixels, and MedianXY are computed over the component's full
// pixel set (interior plus boundary) once, at segmentation time. They
// are NOT recomputed when BoundaryPixels is later replaced
// by ordering, smoothing, or trimming: they describe the component as
// discovered, not the current state of the point sequence. Consumers
// needing post-mutation geometry must derive it from BoundaryPixels
// themselves.
//
// # Ordering State
//
// BoundaryInfo does not track whether BoundaryPixels has been ordered.
// Straight out of Segment the sequence is unordered (scan order);
// adjacency of consecutive points only holds after an ordering stage has
// been applied. Callers are responsible for knowing which stages have
// run.
type BoundaryInfo struct {
	// ID is unique within one detection run, assigned in discovery
	// order: foreground components first, then holes, row-major scan.
	ID int `json:"id"`

	// IsHole is true if this component is a background pocket fully
	// enclosed by opaque pixels (it touches no image border); false for
	// a foreground object.
	IsHole bool `json:"is_hole"`

	// BoundaryPixels is the component's rim, one entry per boundary
	// pixel. Replaced wholesale by each processing stage.
	BoundaryPixels []Point `json:"boundary_pixels"`

	// Bbox is the bounding box of all component pixels at discovery.
	Bbox Bounds `json:"bbox"`

	// AreaPixels counts all component pixels (interior + boundary) at
	// discovery.
	AreaPixels int `json:"area_pixels"`

	// MedianXY is the per-axis median of the component pixel
	// coordinates at discovery: a centroid robust to outlier arms.
	MedianXY Point `json:"median_xy"`
}
