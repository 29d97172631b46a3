package vector

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/cutline-tools/internal/contour"
)

// RenderPreview plots every boundary's point sequence onto a fresh
// transparent raster, one hue per contour, for a quick visual check of
// segmentation and ordering. Consecutive path points are connected with
// line segments so gaps in a bad ordering show up as long straight
// chords. Encoding the result is the caller's concern.
func RenderPreview(w, h int, boundaries []*contour.BoundaryInfo) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, b := range boundaries {
		c := previewColor(i)
		pts := b.BoundaryPixels
		for j, p := range pts {
			if j > 0 {
				drawLine(img, pts[j-1], p, c)
			} else {
				setPixel(img, p.X, p.Y, c)
			}
		}
		if len(pts) > 2 {
			drawLine(img, pts[len(pts)-1], pts[0], c)
		}
	}
	return img
}

func previewColor(i int) color.NRGBA {
	h := math.Mod(float64(i)*137.508, 360)
	r, g, b := colorful.Hsv(h, 0.85, 0.9).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// drawLine rasterizes a segment with the integer Bresenham walk.
func drawLine(img *image.NRGBA, a, b contour.Point, c color.NRGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		setPixel(img, x, y, c)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
