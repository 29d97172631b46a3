// Package imaging provides the raster side of the cutline pipeline.
//
// This package implements image loading with caching, the occupancy grid
// (alpha-thresholded boolean mask) that every detection algorithm reads,
// the three alpha-channel transforms used to prepare print artwork for
// manufacturing tolerance (erosion, inward feather, content-aware bleed),
// and the layout-driven compositor. All pixel operations work with
// *image.NRGBA so that alpha is stored straight (non-premultiplied);
// scaling alpha independently of color, as feathering does, is only
// meaningful on straight alpha.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Images are assumed to have their bounds anchored at (0, 0); LoadNRGBA
// normalizes decoded images into this form.
//
// # Alpha Transforms
//
// Erode, FeatherInward, and Bleed are pure functions: each returns a new
// raster of the same dimensions and leaves its input unmodified. None of
// them can fail on valid raster content; fully-transparent or
// fully-opaque inputs are degenerate cases handled by early return.
// FeatherInward and Bleed share a multi-source breadth-first distance
// propagation over the 8-neighborhood; Bleed additionally carries the
// nearest seed's color, a discrete approximation of a Voronoi diagram
// under BFS distance.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The transforms are
// stateless and can be called concurrently on different images.
package imaging
