package contour

import (
	"testing"

	"github.com/ironsheep/cutline-tools/internal/imaging"
)

// gridFromRows builds an occupancy grid from ASCII art where '#' marks
// a solid cell.
func gridFromRows(rows []string) *imaging.OccupancyGrid {
	h := len(rows)
	w := len(rows[0])
	g := imaging.NewOccupancyGrid(w, h)
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

func TestSegmentSquareWithCenterHole(t *testing.T) {
	rows := make([]string, 10)
	for y := 0; y < 10; y++ {
		row := make([]byte, 10)
		for x := 0; x < 10; x++ {
			if (x == 4 || x == 5) && (y == 4 || y == 5) {
				row[x] = '.'
			} else {
				row[x] = '#'
			}
		}
		rows[y] = string(row)
	}
	g := gridFromRows(rows)

	boundaries := Segment(g)
	if len(boundaries) != 2 {
		t.Fatalf("Segment() found %d components, want 2", len(boundaries))
	}

	obj, hole := boundaries[0], boundaries[1]
	if obj.IsHole {
		t.Error("first component should be the object, got a hole")
	}
	if !hole.IsHole {
		t.Error("second component should be the hole")
	}
	if obj.AreaPixels != 96 {
		t.Errorf("object area = %d, want 96", obj.AreaPixels)
	}
	if hole.AreaPixels != 4 {
		t.Errorf("hole area = %d, want 4", hole.AreaPixels)
	}
	if obj.ID != 0 || hole.ID != 1 {
		t.Errorf("IDs = %d, %d, want 0, 1", obj.ID, hole.ID)
	}

	wantBbox := Bounds{X1: 0, Y1: 0, X2: 9, Y2: 9}
	if obj.Bbox != wantBbox {
		t.Errorf("object bbox = %+v, want %+v", obj.Bbox, wantBbox)
	}
	wantHoleBbox := Bounds{X1: 4, Y1: 4, X2: 5, Y2: 5}
	if hole.Bbox != wantHoleBbox {
		t.Errorf("hole bbox = %+v, want %+v", hole.Bbox, wantHoleBbox)
	}
	if hole.BoundaryPixels == nil || len(hole.BoundaryPixels) != 4 {
		t.Errorf("hole boundary has %d pixels, want 4", len(hole.BoundaryPixels))
	}
}

func TestSegmentDiscardsBorderBackground(t *testing.T) {
	g := gridFromRows([]string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	})

	boundaries := Segment(g)
	if len(boundaries) != 1 {
		t.Fatalf("Segment() found %d components, want 1 (border background must be discarded)", len(boundaries))
	}
	if boundaries[0].IsHole {
		t.Error("surviving component should be the object")
	}
}

func TestSegmentDiagonalConnectivity(t *testing.T) {
	// Two pixels touching only diagonally are one 8-connected component.
	g := gridFromRows([]string{
		"#..",
		".#.",
		"...",
	})
	boundaries := Segment(g)
	if len(boundaries) != 1 {
		t.Fatalf("Segment() found %d components, want 1", len(boundaries))
	}
	if boundaries[0].AreaPixels != 2 {
		t.Errorf("area = %d, want 2", boundaries[0].AreaPixels)
	}
}

func TestSegmentMultipleObjects(t *testing.T) {
	g := gridFromRows([]string{
		"##...",
		"##...",
		".....",
		"...##",
		"...##",
	})
	boundaries := Segment(g)
	if len(boundaries) != 2 {
		t.Fatalf("Segment() found %d components, want 2", len(boundaries))
	}
	// Row-major discovery: top-left block first.
	if boundaries[0].Bbox.X1 != 0 || boundaries[1].Bbox.X1 != 3 {
		t.Errorf("discovery order wrong: bboxes %+v, %+v", boundaries[0].Bbox, boundaries[1].Bbox)
	}
}

func TestBoundaryIsSubsetOfComponent(t *testing.T) {
	g := gridFromRows([]string{
		"......",
		".####.",
		".####.",
		".####.",
		"......",
	})
	boundaries := Segment(g)
	if len(boundaries) != 1 {
		t.Fatalf("Segment() found %d components, want 1", len(boundaries))
	}
	b := boundaries[0]
	// The 4x3 block has no interior pixels off its rim except the two
	// center ones at y=2.
	if len(b.BoundaryPixels) != 10 {
		t.Errorf("boundary pixel count = %d, want 10", len(b.BoundaryPixels))
	}
	for _, p := range b.BoundaryPixels {
		if !g.Solid(p.X, p.Y) {
			t.Errorf("boundary pixel %+v is not solid in the grid", p)
		}
	}
}

func TestSegmentMedianCentroid(t *testing.T) {
	g := gridFromRows([]string{
		"...",
		"###",
		"...",
	})
	boundaries := Segment(g)
	if len(boundaries) != 1 {
		t.Fatalf("Segment() found %d components, want 1", len(boundaries))
	}
	want := Point{X: 1, Y: 1}
	if boundaries[0].MedianXY != want {
		t.Errorf("median = %+v, want %+v", boundaries[0].MedianXY, want)
	}
}

func TestSegmentPartitionsGrid(t *testing.T) {
	// Two objects, one enclosed hole, and border-connected background.
	// Component areas must account for every pixel: objects partition
	// the solid cells, holes partition the transparent cells minus the
	// single discarded border-background region.
	g := gridFromRows([]string{
		"..........",
		".####..##.",
		".#..#..##.",
		".####.....",
		"..........",
	})
	boundaries := Segment(g)

	solid, transparent := 0, 0
	for y := 0; y < g.H(); y++ {
		for x := 0; x < g.W(); x++ {
			if g.Solid(x, y) {
				solid++
			} else {
				transparent++
			}
		}
	}

	// Reference count of the border-connected background, flooded
	// independently of the code under test.
	borderBG := floodFromBorder(g)

	objectArea, holeArea := 0, 0
	seenIDs := make(map[int]bool)
	for _, b := range boundaries {
		if seenIDs[b.ID] {
			t.Errorf("duplicate component ID %d", b.ID)
		}
		seenIDs[b.ID] = true
		if b.IsHole {
			holeArea += b.AreaPixels
		} else {
			objectArea += b.AreaPixels
		}
	}

	if objectArea != solid {
		t.Errorf("object areas sum to %d, want all %d solid pixels", objectArea, solid)
	}
	if holeArea != transparent-borderBG {
		t.Errorf("hole areas sum to %d, want %d transparent pixels minus %d border background",
			holeArea, transparent, borderBG)
	}
	if len(boundaries) != 3 {
		t.Errorf("found %d components, want 2 objects + 1 hole", len(boundaries))
	}
}

// floodFromBorder counts transparent pixels 8-connected to the image
// border, mirroring the background region the segmenter discards.
func floodFromBorder(g *imaging.OccupancyGrid) int {
	visited := make([]bool, g.W()*g.H())
	var queue []Point
	for y := 0; y < g.H(); y++ {
		for x := 0; x < g.W(); x++ {
			onBorder := x == 0 || y == 0 || x == g.W()-1 || y == g.H()-1
			if onBorder && !g.Solid(x, y) && !visited[y*g.W()+x] {
				visited[y*g.W()+x] = true
				queue = append(queue, Point{X: x, Y: y})
			}
		}
	}
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		for i := 0; i < 8; i++ {
			nx, ny := p.X+dx8[i], p.Y+dy8[i]
			if g.In(nx, ny) && !g.Solid(nx, ny) && !visited[ny*g.W()+nx] {
				visited[ny*g.W()+nx] = true
				queue = append(queue, Point{X: nx, Y: ny})
			}
		}
	}
	return count
}

func TestFilterMinArea(t *testing.T) {
	boundaries := []*BoundaryInfo{
		{ID: 0, AreaPixels: 100},
		{ID: 1, AreaPixels: 3},
		{ID: 2, AreaPixels: 50},
	}
	kept := FilterMinArea(boundaries, 10)
	if len(kept) != 2 {
		t.Fatalf("FilterMinArea kept %d, want 2", len(kept))
	}
	if kept[0].ID != 0 || kept[1].ID != 2 {
		t.Errorf("kept IDs = %d, %d, want 0, 2", kept[0].ID, kept[1].ID)
	}
	if got := FilterMinArea(boundaries, 0); len(got) != 3 {
		t.Errorf("minArea 0 should keep everything, kept %d", len(got))
	}
}
