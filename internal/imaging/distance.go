package imaging

// Neighbor offsets for 8-connected propagation, scanned E, SE, S, SW, W,
// NW, N, NE. The same tables drive flood fill in the contour package.
var (
	neighborDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	neighborDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// unreached marks grid cells the capped propagation never visited.
const unreached = -1

// distanceField runs a capped multi-source breadth-first propagation over
// the 8-neighborhood of a w*h grid.
//
// seeds lists the starting cell indices (y*w+x); each starts at distance
// 0. The wave expands one ring per BFS level, so the resulting distance
// approximates Euclidean distance by the Chebyshev metric, which is what
// the feather and bleed transforms are specified against. Cells farther
// than maxDist keep the value unreached.
//
// If label is non-nil it must have length w*h with each seed's attribute
// already stored at its own index; the propagation copies the attribute
// of the nearest seed into every cell it reaches (first writer wins,
// which under BFS order is a nearest seed).
func distanceField(w, h int, seeds []int, maxDist int, label []uint32) []int {
	dist := make([]int, w*h)
	for i := range dist {
		dist[i] = unreached
	}
	if maxDist <= 0 || len(seeds) == 0 {
		return dist
	}

	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if dist[s] == unreached {
			dist[s] = 0
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d >= maxDist {
			continue
		}
		cx, cy := cur%w, cur/w
		for i := 0; i < 8; i++ {
			nx, ny := cx+neighborDX[i], cy+neighborDY[i]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ni := ny*w + nx
			if dist[ni] != unreached {
				continue
			}
			dist[ni] = d + 1
			if label != nil {
				label[ni] = label[cur]
			}
			queue = append(queue, ni)
		}
	}
	return dist
}
