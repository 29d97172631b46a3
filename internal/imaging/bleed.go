package imaging

import "image"

// Bleed grows the opaque content of a raster outward by radius pixels,
// filling each newly covered pixel with the color of its nearest opaque
// source pixel.
//
// This is the content-aware bleed used to extend printed artwork past the
// cut line: the cutting tolerance then trims into stretched content
// instead of exposing unprinted white.
//
// Parameters:
//   - img: Source raster; not modified.
//   - radius: Growth distance in pixels.
//   - feather: Optional feather width. Within the last feather pixels of
//     the growth radius the fill's alpha ramps linearly down to 0, giving
//     the grown boundary a soft edge. 0 means a hard edge.
//
// Returns a new raster of identical dimensions. If the source has no
// opaque pixel, or radius <= 0, the result is fully transparent.
//
// # Algorithm
//
// Every opaque pixel (alpha > 0) seeds a multi-source BFS at distance 0,
// carrying its own packed RGBA as the propagated label. Because BFS
// expands in rings, the first label to reach a transparent pixel belongs
// to (one of) its nearest sources; the propagation is a discrete Voronoi
// diagram under BFS distance. Transparent pixels reached within the
// radius take the label's color; source pixels are copied through
// unchanged.
func Bleed(img *image.NRGBA, radius, feather int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if radius <= 0 {
		return out
	}

	labels := make([]uint32, w*h)
	seeds := make([]int, 0, w*h/4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			if img.Pix[i+3] == 0 {
				continue
			}
			idx := y*w + x
			labels[idx] = uint32(img.Pix[i])<<24 | uint32(img.Pix[i+1])<<16 |
				uint32(img.Pix[i+2])<<8 | uint32(img.Pix[i+3])
			seeds = append(seeds, idx)
		}
	}
	if len(seeds) == 0 {
		return out
	}

	dist := distanceField(w, h, seeds, radius, labels)

	if feather > radius {
		feather = radius
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			d := dist[idx]
			if d == unreached || d > radius {
				continue
			}
			o := y*out.Stride + x*4
			if d == 0 {
				i := y*img.Stride + x*4
				copy(out.Pix[o:o+4], img.Pix[i:i+4])
				continue
			}
			l := labels[idx]
			out.Pix[o] = uint8(l >> 24)
			out.Pix[o+1] = uint8(l >> 16)
			out.Pix[o+2] = uint8(l >> 8)
			out.Pix[o+3] = bleedAlpha(d, radius, feather)
		}
	}
	return out
}

// bleedAlpha returns the fill opacity at BFS distance d: fully opaque up
// to radius-feather, then a linear ramp down to 0 at the radius edge.
func bleedAlpha(d, radius, feather int) uint8 {
	if feather <= 0 || d <= radius-feather {
		return 255
	}
	return uint8(255 * (radius - d) / feather)
}
