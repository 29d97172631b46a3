// Package pipeline chains the raster and contour stages into one
// detection run: load, alpha transforms, occupancy, segmentation,
// ordering, smoothing, trimming, synthetic frame, and output encoding.
//
// The run is sequential and single-threaded. Every stage
// is a pure function over the previous stage's output, so the pipeline
// is just plumbing plus I/O at both ends.
package pipeline

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ironsheep/cutline-tools/internal/contour"
	"github.com/ironsheep/cutline-tools/internal/imaging"
	"github.com/ironsheep/cutline-tools/internal/vector"
)

// Config selects the input, the stages to run, and the outputs.
type Config struct {
	// InputPath is the artwork raster (PNG, JPEG, or GIF).
	InputPath string

	// AlphaThreshold is the occupancy cutoff: a pixel is solid when its
	// alpha is >= this value. The conventional value is 1.
	AlphaThreshold uint8

	// ErodeRadius, FeatherRadius, and BleedRadius enable the alpha
	// transforms when positive, applied in that order before occupancy.
	// BleedFeatherWidth softens the bleed edge.
	ErodeRadius       int
	FeatherRadius     int
	BleedRadius       int
	BleedFeatherWidth int

	// MinAreaPixels drops components smaller than this after
	// segmentation. Zero keeps everything.
	MinAreaPixels int

	// Strategy picks the contour ordering. Empty means Moore tracing
	// with its built-in greedy fallback.
	Strategy contour.OrderStrategy

	// Smooth configures the moving-average passes. Zero iterations
	// skips smoothing.
	Smooth contour.SmoothOptions

	// TrimEnabled runs closure trimming after smoothing.
	TrimEnabled bool
	Trim        contour.TrimOptions

	// FrameEnabled appends a synthetic rounded-rectangle cutline
	// spanning the whole canvas.
	FrameEnabled  bool
	FrameRadius   float64
	FrameSegments int

	// DPI scales pixel geometry to physical units in the SVG output.
	// Required when SVGPath is set.
	DPI float64

	// SVGPath and PreviewPath name the outputs; empty disables each.
	SVGPath     string
	PreviewPath string

	// FlipY and DistinctHues pass through to the SVG writer.
	FlipY        bool
	DistinctHues bool
}

// Result reports what a run produced.
type Result struct {
	// RunID uniquely identifies this run in logs and output metadata.
	RunID string `json:"run_id"`

	// Width, Height are the processed raster dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Boundaries holds every surviving contour, objects then holes,
	// with BoundaryPixels carrying the fully processed path. The
	// synthetic frame, if enabled, is last.
	Boundaries []*contour.BoundaryInfo `json:"boundaries"`

	// Closed records, per boundary, whether the final path is known to
	// be closed: true for Moore-traced rings and trimmed closures,
	// false when a greedy path never returned to its start.
	Closed []bool `json:"closed"`
}

// Run executes one detection run.
func Run(cfg Config) (*Result, error) {
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("pipeline: no input path")
	}
	if cfg.SVGPath != "" && cfg.DPI <= 0 {
		return nil, fmt.Errorf("pipeline: SVG output requires a positive DPI, got %g", cfg.DPI)
	}

	cache := imaging.NewImageCache()
	img, err := cache.LoadNRGBA(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if cfg.ErodeRadius > 0 {
		img = imaging.Erode(img, cfg.ErodeRadius)
	}
	if cfg.FeatherRadius > 0 {
		img = imaging.FeatherInward(img, cfg.FeatherRadius)
	}
	if cfg.BleedRadius > 0 {
		img = imaging.Bleed(img, cfg.BleedRadius, cfg.BleedFeatherWidth)
	}

	g := imaging.BuildOccupancy(img, cfg.AlphaThreshold)

	strategy := cfg.Strategy
	if strategy == "" {
		strategy = contour.MooreTrace
	}

	boundaries := contour.FilterMinArea(contour.Segment(g), cfg.MinAreaPixels)
	closed := make([]bool, 0, len(boundaries)+1)
	for _, b := range boundaries {
		var path []contour.Point
		var isClosed bool
		if strategy == contour.MooreTrace {
			path, isClosed = contour.TraceMoore(g, b.BoundaryPixels, !b.IsHole)
			if !isClosed {
				path = contour.OrderGreedy(b.BoundaryPixels)
			}
		} else {
			path = contour.OrderGreedy(b.BoundaryPixels)
		}

		if cfg.Smooth.Iterations > 0 {
			path = contour.Smooth(path, cfg.Smooth)
		}
		if cfg.TrimEnabled {
			var trimmed bool
			path, trimmed = contour.TrimClosure(path, cfg.Trim)
			isClosed = isClosed || trimmed
		}

		b.BoundaryPixels = path
		closed = append(closed, isClosed)
	}

	if cfg.FrameEnabled {
		// IDs of filtered-out components must not be reused, so the
		// frame takes one past the highest surviving ID.
		nextID := 0
		for _, b := range boundaries {
			if b.ID >= nextID {
				nextID = b.ID + 1
			}
		}
		frame := contour.FrameBoundary(nextID, g.W(), g.H(), cfg.FrameRadius, cfg.FrameSegments)
		boundaries = append(boundaries, frame)
		closed = append(closed, true)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		Width:      g.W(),
		Height:     g.H(),
		Boundaries: boundaries,
		Closed:     closed,
	}

	if cfg.SVGPath != "" {
		if err := writeSVGFile(cfg, res); err != nil {
			return nil, err
		}
	}
	if cfg.PreviewPath != "" {
		preview := vector.RenderPreview(res.Width, res.Height, boundaries)
		if err := imaging.SavePNG(preview, cfg.PreviewPath); err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
	}
	return res, nil
}

func writeSVGFile(cfg Config, res *Result) error {
	f, err := os.Create(cfg.SVGPath)
	if err != nil {
		return fmt.Errorf("pipeline: failed to create SVG output: %w", err)
	}
	defer f.Close()

	err = vector.WriteSVG(f, res.Boundaries, vector.SVGOptions{
		WidthPx:      res.Width,
		HeightPx:     res.Height,
		DPI:          cfg.DPI,
		FlipY:        cfg.FlipY,
		DistinctHues: cfg.DistinctHues,
	})
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pipeline: failed to write SVG output: %w", err)
	}
	return nil
}
