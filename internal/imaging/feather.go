package imaging

import "image"

// FeatherInward applies a gradual alpha falloff to the inside edge of the
// opaque region.
//
// A distance field is seeded at 0 from every fully transparent pixel and
// propagated inward via 8-connected BFS, capped at radius. Every opaque
// pixel at distance d < radius from the transparent region has its alpha
// scaled by d/radius, so alpha fades to (near) zero right at the edge and
// reaches its original value at distance radius. Pixels at or beyond the
// radius, and all color channels, are unchanged.
//
// Degenerate cases: radius <= 0, or an image with no transparent pixel to
// seed from, returns an unmodified clone.
func FeatherInward(img *image.NRGBA, radius int) *image.NRGBA {
	out := cloneNRGBA(img)
	if radius <= 0 {
		return out
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	seeds := make([]int, 0, w*h/4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.Pix[y*img.Stride+x*4+3] == 0 {
				seeds = append(seeds, y*w+x)
			}
		}
	}
	if len(seeds) == 0 {
		return out
	}

	dist := distanceField(w, h, seeds, radius, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			a := img.Pix[i+3]
			if a == 0 {
				continue
			}
			d := dist[y*w+x]
			if d == unreached || d >= radius {
				continue
			}
			out.Pix[i+3] = uint8(int(a) * d / radius)
		}
	}
	return out
}
