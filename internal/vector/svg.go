// Package vector turns ordered contours into deliverable artifacts: an
// SVG cutline file for the cutting workflow and a raster preview for
// visual inspection.
package vector

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/cutline-tools/internal/contour"
)

// SVGOptions configures the cutline writer.
type SVGOptions struct {
	// WidthPx, HeightPx give the source canvas size in pixels. The SVG
	// viewBox uses pixel units; the document width and height are
	// emitted in millimeters so cutting software imports at true
	// physical scale.
	WidthPx, HeightPx int

	// DPI converts pixels to millimeters: mm = px * 25.4 / DPI.
	// Must be > 0.
	DPI float64

	// FlipY mirrors the geometry vertically for consumers that expect a
	// bottom-left origin.
	FlipY bool

	// StrokeWidthMM is the cut stroke width. Zero selects 0.1 mm, a
	// conventional hairline for cutter import.
	StrokeWidthMM float64

	// DistinctHues strokes every contour in its own hue instead of the
	// plain cut color, for debugging which boundary produced which
	// path.
	DistinctHues bool
}

// WriteSVG emits one closed path element per boundary. Object contours
// are stroked in black and hole contours in red so a cutting operator
// can tell them apart at a glance; DistinctHues overrides both with a
// per-contour color ramp.
func WriteSVG(w io.Writer, boundaries []*contour.BoundaryInfo, opts SVGOptions) error {
	if opts.DPI <= 0 {
		return fmt.Errorf("svg: DPI must be positive, got %g", opts.DPI)
	}
	if opts.WidthPx <= 0 || opts.HeightPx <= 0 {
		return fmt.Errorf("svg: canvas %dx%d px is not positive", opts.WidthPx, opts.HeightPx)
	}
	strokeMM := opts.StrokeWidthMM
	if strokeMM <= 0 {
		strokeMM = 0.1
	}

	mmPerPx := 25.4 / opts.DPI
	canvas := svg.New(w)
	canvas.Startraw(
		fmt.Sprintf(`width="%.4fmm"`, float64(opts.WidthPx)*mmPerPx),
		fmt.Sprintf(`height="%.4fmm"`, float64(opts.HeightPx)*mmPerPx),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, opts.WidthPx, opts.HeightPx),
	)

	for i, b := range boundaries {
		if len(b.BoundaryPixels) == 0 {
			continue
		}
		color := "#000000"
		if b.IsHole {
			color = "#cc0000"
		}
		if opts.DistinctHues {
			color = hueForIndex(i)
		}
		style := fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%.4f", color, strokeMM/mmPerPx)
		canvas.Path(pathData(b.BoundaryPixels, opts.HeightPx, opts.FlipY), style)
	}

	canvas.End()
	return nil
}

// pathData builds the d attribute for a closed contour in pixel
// coordinates.
func pathData(points []contour.Point, heightPx int, flipY bool) string {
	var sb strings.Builder
	for i, p := range points {
		y := p.Y
		if flipY {
			y = heightPx - 1 - p.Y
		}
		if i == 0 {
			fmt.Fprintf(&sb, "M%d,%d", p.X, y)
		} else {
			fmt.Fprintf(&sb, " L%d,%d", p.X, y)
		}
	}
	sb.WriteString(" Z")
	return sb.String()
}

// hueForIndex spreads contour colors around the hue wheel by the golden
// angle so neighboring IDs stay visually distinct.
func hueForIndex(i int) string {
	h := math.Mod(float64(i)*137.508, 360)
	return colorful.Hsv(h, 0.85, 0.9).Hex()
}
