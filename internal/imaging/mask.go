package imaging

import "image"

// OccupancyGrid is a boolean matrix marking which pixels of a raster are
// opaque under an alpha threshold.
//
// The grid is derived once from an image and never mutated afterwards;
// the alpha transforms each build their own grid rather than sharing one.
// Cells are stored row-major in a single slice.
type OccupancyGrid struct {
	w, h  int
	cells []bool
}

// BuildOccupancy derives an occupancy grid from a raster.
//
// Parameters:
//   - img: Source raster with straight alpha.
//   - threshold: Alpha opacity threshold (0-255). A pixel is opaque iff
//     its alpha is >= threshold. The conventional default is 1, treating
//     any non-zero alpha as opaque.
//
// The function is a pure O(W*H) pass over the alpha channel with no
// failure modes.
func BuildOccupancy(img *image.NRGBA, threshold uint8) *OccupancyGrid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	g := &OccupancyGrid{w: w, h: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = row[x*4+3] >= threshold
		}
	}
	return g
}

// NewOccupancyGrid creates an all-transparent grid of the given size.
// Intended for tests and synthetic masks.
func NewOccupancyGrid(w, h int) *OccupancyGrid {
	return &OccupancyGrid{w: w, h: h, cells: make([]bool, w*h)}
}

// W returns the grid width in pixels.
func (g *OccupancyGrid) W() int { return g.w }

// H returns the grid height in pixels.
func (g *OccupancyGrid) H() int { return g.h }

// In reports whether (x, y) lies inside the grid.
func (g *OccupancyGrid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Solid reports whether the pixel at (x, y) is opaque. Out-of-grid
// coordinates report false; callers that need to distinguish "outside"
// from "transparent" test In() first.
func (g *OccupancyGrid) Solid(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	return g.cells[y*g.w+x]
}

// Set marks the occupancy state of a pixel. Only grids created with
// NewOccupancyGrid should be mutated; grids built from an image are
// treated as immutable by every consumer.
func (g *OccupancyGrid) Set(x, y int, solid bool) {
	if g.In(x, y) {
		g.cells[y*g.w+x] = solid
	}
}
