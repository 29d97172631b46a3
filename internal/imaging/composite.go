package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// PlacedItem describes one sub-image placement on the output canvas.
//
// Geometry is given in the physical millimeter coordinates of the layout
// tool: origin at the canvas center, +X right, +Y up. The compositor
// converts to pixel coordinates (origin top-left, +Y down) using the DPI
// of the CompositeOptions.
type PlacedItem struct {
	// Image is the artwork to place. Nil items are skipped.
	Image image.Image

	// CenterX, CenterY locate the item's center in mm.
	CenterX, CenterY float64

	// Width, Height give the target footprint in mm. The image is
	// resized to fill the footprint exactly; aspect-ratio fitting is the
	// layout tool's job, not the compositor's.
	Width, Height float64

	// RotationDeg rotates the item counter-clockwise (in the layout
	// tool's +Y-up frame) about its center, in degrees.
	RotationDeg float64
}

// CompositeOptions configures canvas size and unit conversion.
type CompositeOptions struct {
	// CanvasWidthMM, CanvasHeightMM give the physical canvas size.
	CanvasWidthMM, CanvasHeightMM float64

	// DPI converts mm to pixels: px = mm / 25.4 * DPI. Must be > 0.
	DPI float64

	// Background fills the canvas before placement. Nil means fully
	// transparent, which keeps the canvas usable as input to the
	// occupancy builder.
	Background color.Color
}

// Composite renders placed sub-images onto a single canvas by ordinary
// alpha-blended layering, in slice order (later items on top).
//
// Returns the composited canvas, or an error for non-positive canvas or
// DPI parameters. Items whose footprint converts to less than one pixel
// are skipped rather than failing the whole composite.
func Composite(items []PlacedItem, opts CompositeOptions) (*image.NRGBA, error) {
	if opts.DPI <= 0 {
		return nil, fmt.Errorf("composite: DPI must be positive, got %g", opts.DPI)
	}
	if opts.CanvasWidthMM <= 0 || opts.CanvasHeightMM <= 0 {
		return nil, fmt.Errorf("composite: canvas %gx%g mm is not positive",
			opts.CanvasWidthMM, opts.CanvasHeightMM)
	}

	pxPerMM := opts.DPI / 25.4
	cw := int(math.Round(opts.CanvasWidthMM * pxPerMM))
	ch := int(math.Round(opts.CanvasHeightMM * pxPerMM))

	bg := opts.Background
	if bg == nil {
		bg = color.NRGBA{}
	}
	canvas := imaging.New(cw, ch, bg)

	for _, it := range items {
		if it.Image == nil {
			continue
		}
		tw := int(math.Round(it.Width * pxPerMM))
		th := int(math.Round(it.Height * pxPerMM))
		if tw < 1 || th < 1 {
			continue
		}

		layer := imaging.Resize(it.Image, tw, th, imaging.Lanczos)

		var placed image.Image = layer
		if it.RotationDeg != 0 {
			// bild rotates clockwise in screen coordinates; the layout
			// frame is +Y-up, so the angle carries through unchanged.
			placed = transform.Rotate(layer, it.RotationDeg, &transform.RotationOptions{
				ResizeBounds: true,
			})
		}

		// mm center (origin middle, +Y up) -> px top-left (+Y down).
		pb := placed.Bounds()
		cxPx := float64(cw)/2 + it.CenterX*pxPerMM
		cyPx := float64(ch)/2 - it.CenterY*pxPerMM
		pos := image.Pt(
			int(math.Round(cxPx-float64(pb.Dx())/2)),
			int(math.Round(cyPx-float64(pb.Dy())/2)),
		)
		canvas = imaging.Overlay(canvas, placed, pos, 1.0)
	}
	return canvas, nil
}
