// Package contour turns an occupancy grid into ordered, closed vector
// contours suitable for physical cutting and plotting.
//
// The package covers connected-component segmentation of opaque regions
// and enclosed transparent holes, boundary-pixel extraction, two contour
// ordering strategies (greedy nearest-neighbor and Moore-neighbor border
// tracing), iterative moving-average smoothing, closure trimming, and a
// synthetic rounded-rectangle generator for frames and cutlines.
//
// # Pipeline
//
// A typical detection run is:
//
//  1. Segment: occupancy grid -> []*BoundaryInfo, one per component,
//     objects and enclosed holes, with unordered boundary pixels
//  2. Order: unordered boundary -> ordered closed path (MooreTrace with
//     GreedyNearestNeighbor fallback)
//  3. Smooth: low-pass the ordered path
//  4. TrimClosure: cut trailing points past the geometric closure
//
// Each stage is a value-returning transformation: it takes a point
// sequence and returns a new one, and the caller assigns the result back
// onto the BoundaryInfo it came from. This keeps the stages individually
// testable and the component list safe to process in parallel, should a
// caller choose to, without changing any output.
//
// # Coordinate System
//
// All geometry lives on the integer pixel grid of the source image:
// origin (0, 0) at top-left, X rightward, Y downward. There is no
// sub-pixel accuracy anywhere in this package. "Clockwise" below means
// clockwise as displayed on screen with Y down.
//
// # Error Handling
//
// The package has no error returns. Degenerate geometric input (point
// sets too small to form a contour, isolated single pixels, masks the
// tracer cannot walk) produces early-return values or a false ok flag,
// never a failure.
package contour
