package contour

import "github.com/ironsheep/cutline-tools/internal/imaging"

// OrderStrategy selects how an unordered boundary pixel set is turned
// into a sequential path.
type OrderStrategy string

const (
	// GreedyNearestNeighbor chains pixels by repeatedly hopping to the
	// closest remaining one. Fast and robust, but can jump across thin
	// gaps in noisy boundaries.
	GreedyNearestNeighbor OrderStrategy = "greedy"

	// MooreTrace walks the component perimeter pixel by pixel using
	// Moore neighborhood tracing. Produces a true closed circuit when it
	// succeeds; falls back to greedy when it cannot complete one.
	MooreTrace OrderStrategy = "moore"
)

// Order sequences a boundary's pixels with the requested strategy and
// returns the ordered path. The grid is needed only for Moore tracing,
// which must probe occupancy beyond the boundary set itself. A Moore
// trace that fails (open or runaway perimeter) silently degrades to the
// greedy ordering of the original boundary set.
func Order(g *imaging.OccupancyGrid, b *BoundaryInfo, strategy OrderStrategy) []Point {
	if strategy == MooreTrace {
		if path, ok := TraceMoore(g, b.BoundaryPixels, !b.IsHole); ok {
			return path
		}
	}
	return OrderGreedy(b.BoundaryPixels)
}

// OrderGreedy orders points by nearest-neighbor chaining. The anchor is
// the point with the smallest X+Y sum (ties broken by input order), and
// each subsequent point is the unvisited one at minimum squared
// Euclidean distance from the current point, again first-found on ties.
// The result is a permutation of the input; the input slice is not
// modified.
func OrderGreedy(points []Point) []Point {
	if len(points) <= 1 {
		return append([]Point(nil), points...)
	}

	remaining := append([]Point(nil), points...)
	anchor := 0
	for i, p := range remaining {
		if p.X+p.Y < remaining[anchor].X+remaining[anchor].Y {
			anchor = i
		}
	}

	ordered := make([]Point, 0, len(remaining))
	cur := remaining[anchor]
	ordered = append(ordered, cur)
	remaining = append(remaining[:anchor], remaining[anchor+1:]...)

	for len(remaining) > 0 {
		best := 0
		bestD := distSq(cur, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := distSq(cur, remaining[i]); d < bestD {
				best, bestD = i, d
			}
		}
		cur = remaining[best]
		ordered = append(ordered, cur)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return ordered
}

// TraceMoore walks the outer rim of the component whose boundary pixels
// are given, producing them in perimeter order. wantSolid is true when
// tracing an object and false when tracing a hole's transparent
// interior.
//
// # Algorithm
//
// Start at the topmost, then leftmost, boundary pixel. From each
// current pixel, scan its 8 neighbors clockwise beginning one step past
// the direction of the previous pixel (initially due west, as if the
// walk had arrived from the left). The first neighbor in the target
// occupancy state becomes the next pixel. The trace terminates when,
// standing on the start pixel again, it is about to repeat its very
// first move, which distinguishes a completed circuit from a mere
// revisit of the start on a pinched contour.
//
// A step budget of 4 times the grid area bounds pathological inputs; if
// the budget is exhausted before closure the trace reports failure and
// the caller should fall back to greedy ordering.
func TraceMoore(g *imaging.OccupancyGrid, boundary []Point, wantSolid bool) ([]Point, bool) {
	if len(boundary) == 0 {
		return nil, false
	}

	start := boundary[0]
	for _, p := range boundary[1:] {
		if p.Y < start.Y || (p.Y == start.Y && p.X < start.X) {
			start = p
		}
	}

	path := []Point{start}
	cur := start
	prev := Point{X: start.X - 1, Y: start.Y}
	firstDir := -1
	maxSteps := 4 * g.W() * g.H()

	for step := 0; step < maxSteps; step++ {
		backDir := dirIndex(prev.X-cur.X, prev.Y-cur.Y)

		found := false
		for i := 1; i <= 8; i++ {
			d := (backDir + i) % 8
			nx, ny := cur.X+dx8[d], cur.Y+dy8[d]
			if g.In(nx, ny) && g.Solid(nx, ny) == wantSolid {
				if firstDir == -1 {
					firstDir = d
				} else if cur == start && d == firstDir {
					// About to repeat the very first move: the circuit
					// is complete. Drop the re-entered start so the ring
					// carries each perimeter pixel once.
					if path[len(path)-1] == start {
						path = path[:len(path)-1]
					}
					return path, true
				}
				prev = cur
				cur = Point{X: nx, Y: ny}
				path = append(path, cur)
				found = true
				break
			}
		}
		if !found {
			// Isolated pixel or pinch with no walkable neighbor. Return
			// the degenerate path and let the caller fall back.
			return path, false
		}
	}
	return nil, false
}

// dirIndex maps a unit-ish offset to its slot in the clockwise neighbor
// tables.
func dirIndex(dx, dy int) int {
	for i := 0; i < 8; i++ {
		if dx8[i] == dx && dy8[i] == dy {
			return i
		}
	}
	return 4 // west, the initial synthetic arrival direction
}

func distSq(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
