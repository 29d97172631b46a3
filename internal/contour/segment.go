package contour

import (
	"sort"

	"github.com/ironsheep/cutline-tools/internal/imaging"
)

// 8-connected neighbor offsets, clockwise from east. Shared by flood
// fill and Moore tracing so both walk the same neighborhood.
var (
	dx8 = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	dy8 = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// Segment discovers every connected component of an occupancy grid and
// returns one BoundaryInfo per component, objects first, then enclosed
// holes.
//
// # Algorithm
//
// Two independent sweeps, each an 8-connected breadth-first flood fill
// seeded at any unvisited pixel of the target state, scanning row-major
// (y outer, x inner):
//
//  1. Foreground pass: seeds at opaque pixels; every component becomes a
//     BoundaryInfo with IsHole=false.
//  2. Background pass: seeds at transparent pixels; a component is kept
//     (IsHole=true) only if none of its pixels lies on the image border.
//     Border-touching background is the page behind the artwork, not a
//     hole, and is discarded.
//
// Each pass has its own visited grid, so the two labelings never
// interfere. IDs come from one counter local to this call, incremented
// across both passes, which makes discovery order and ID assignment
// deterministic for a fixed input.
//
// Boundary pixels, bounding box, pixel count, and median centroid are
// snapshotted per component at discovery; see BoundaryInfo for the
// staleness contract.
func Segment(g *imaging.OccupancyGrid) []*BoundaryInfo {
	var out []*BoundaryInfo
	nextID := 0

	for _, wantSolid := range []bool{true, false} {
		visited := make([]bool, g.W()*g.H())
		for y := 0; y < g.H(); y++ {
			for x := 0; x < g.W(); x++ {
				if visited[y*g.W()+x] || g.Solid(x, y) != wantSolid {
					continue
				}
				pixels, touchesBorder := floodFill(g, visited, x, y, wantSolid)
				if !wantSolid && touchesBorder {
					continue
				}
				b := newBoundaryInfo(nextID, !wantSolid, pixels)
				b.BoundaryPixels = ExtractBoundary(g, pixels, wantSolid)
				out = append(out, b)
				nextID++
			}
		}
	}
	return out
}

// floodFill collects the 8-connected component of the target state
// containing (sx, sy), marking it in visited. It also reports whether
// any member pixel lies on the image border, which the caller uses for
// the enclosed-hole test.
//
// Uses an explicit queue rather than recursion so large regions cannot
// overflow the stack.
func floodFill(g *imaging.OccupancyGrid, visited []bool, sx, sy int, wantSolid bool) ([]Point, bool) {
	w := g.W()
	pixels := make([]Point, 0, 64)
	touchesBorder := false

	queue := []Point{{X: sx, Y: sy}}
	visited[sy*w+sx] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		pixels = append(pixels, p)
		if p.X == 0 || p.Y == 0 || p.X == g.W()-1 || p.Y == g.H()-1 {
			touchesBorder = true
		}

		for i := 0; i < 8; i++ {
			nx, ny := p.X+dx8[i], p.Y+dy8[i]
			if !g.In(nx, ny) || visited[ny*w+nx] || g.Solid(nx, ny) != wantSolid {
				continue
			}
			visited[ny*w+nx] = true
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}
	return pixels, touchesBorder
}

// ExtractBoundary returns the pixel-thick rim of a component: every
// component pixel with at least one 4-connected neighbor that is outside
// the grid or of the opposite occupancy state. The result is unordered
// (component scan order).
func ExtractBoundary(g *imaging.OccupancyGrid, pixels []Point, wantSolid bool) []Point {
	boundary := make([]Point, 0, len(pixels)/2)
	for _, p := range pixels {
		if isBoundaryPixel(g, p.X, p.Y, wantSolid) {
			boundary = append(boundary, p)
		}
	}
	return boundary
}

func isBoundaryPixel(g *imaging.OccupancyGrid, x, y int, wantSolid bool) bool {
	for _, n := range [4]Point{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
		if !g.In(n.X, n.Y) || g.Solid(n.X, n.Y) != wantSolid {
			return true
		}
	}
	return false
}

// newBoundaryInfo snapshots bbox, area, and median centroid from the
// full component pixel set.
func newBoundaryInfo(id int, isHole bool, pixels []Point) *BoundaryInfo {
	b := &BoundaryInfo{
		ID:         id,
		IsHole:     isHole,
		AreaPixels: len(pixels),
	}
	if len(pixels) == 0 {
		return b
	}

	xs := make([]int, len(pixels))
	ys := make([]int, len(pixels))
	b.Bbox = Bounds{X1: pixels[0].X, Y1: pixels[0].Y, X2: pixels[0].X, Y2: pixels[0].Y}
	for i, p := range pixels {
		xs[i], ys[i] = p.X, p.Y
		if p.X < b.Bbox.X1 {
			b.Bbox.X1 = p.X
		}
		if p.X > b.Bbox.X2 {
			b.Bbox.X2 = p.X
		}
		if p.Y < b.Bbox.Y1 {
			b.Bbox.Y1 = p.Y
		}
		if p.Y > b.Bbox.Y2 {
			b.Bbox.Y2 = p.Y
		}
	}
	sort.Ints(xs)
	sort.Ints(ys)
	b.MedianXY = Point{X: xs[len(xs)/2], Y: ys[len(ys)/2]}
	return b
}

// FilterMinArea discards components below a pixel-count threshold,
// preserving order. Tiny specks of antialiasing noise are not worth a
// cut path.
func FilterMinArea(boundaries []*BoundaryInfo, minArea int) []*BoundaryInfo {
	if minArea <= 0 {
		return boundaries
	}
	kept := make([]*BoundaryInfo, 0, len(boundaries))
	for _, b := range boundaries {
		if b.AreaPixels >= minArea {
			kept = append(kept, b)
		}
	}
	return kept
}
