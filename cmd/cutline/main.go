package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ironsheep/cutline-tools/internal/contour"
	"github.com/ironsheep/cutline-tools/internal/imaging"
	"github.com/ironsheep/cutline-tools/internal/layout"
	"github.com/ironsheep/cutline-tools/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("cutline-tools %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	// Logging goes to stderr so stdout stays clean for piped output
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "contours":
		err = runContours(os.Args[2:])
	case "erode", "feather", "bleed":
		err = runTransform(os.Args[1], os.Args[2:])
	case "compose":
		err = runCompose(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("cutline-tools - contour detection and cutline generation for printed parts")
	fmt.Println()
	fmt.Println("Usage: cutline <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  contours   Detect contours in a raster and write an SVG cutline")
	fmt.Println("  erode      Shrink the opaque region by a disk radius")
	fmt.Println("  feather    Fade alpha inward from the transparent edge")
	fmt.Println("  bleed      Grow content outward, filling with nearest-source color")
	fmt.Println("  compose    Composite part images onto a card per a layout file")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Run 'cutline <command> -h' for command options.")
}

func runContours(args []string) error {
	fs := flag.NewFlagSet("contours", flag.ExitOnError)
	var (
		in        = fs.String("in", "", "input raster (png/jpeg/gif)")
		svgOut    = fs.String("svg", "", "SVG cutline output path")
		preview   = fs.String("preview", "", "preview PNG output path")
		threshold = fs.Uint("threshold", 1, "alpha occupancy threshold (0-255)")
		minArea   = fs.Int("min-area", 0, "drop components smaller than this many pixels")
		strategy  = fs.String("order", "moore", "ordering strategy: moore or greedy")
		smoothN   = fs.Int("smooth", 0, "smoothing iterations (0 = off)")
		window    = fs.Int("window", 3, "smoothing window size (odd, >= 3)")
		trim      = fs.Bool("trim", false, "trim trailing points past the closure")
		frame     = fs.Bool("frame", false, "append a rounded-rectangle frame cutline")
		frameR    = fs.Float64("frame-radius", 0, "frame corner radius in pixels")
		frameSeg  = fs.Int("frame-segments", 8, "line segments per frame corner")
		dpi       = fs.Float64("dpi", 300, "raster density for physical SVG units")
		flipY     = fs.Bool("flip-y", false, "mirror SVG geometry to a bottom-left origin")
		hues      = fs.Bool("debug-hues", false, "stroke each contour in its own hue")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("missing required -in")
	}

	var order contour.OrderStrategy
	switch *strategy {
	case "moore":
		order = contour.MooreTrace
	case "greedy":
		order = contour.GreedyNearestNeighbor
	default:
		return fmt.Errorf("unknown ordering strategy %q", *strategy)
	}

	res, err := pipeline.Run(pipeline.Config{
		InputPath:      *in,
		AlphaThreshold: uint8(*threshold),
		MinAreaPixels:  *minArea,
		Strategy:       order,
		Smooth:         contour.SmoothOptions{Iterations: *smoothN, Window: *window, Closed: true},
		TrimEnabled:    *trim,
		FrameEnabled:   *frame,
		FrameRadius:    *frameR,
		FrameSegments:  *frameSeg,
		DPI:            *dpi,
		SVGPath:        *svgOut,
		PreviewPath:    *preview,
		FlipY:          *flipY,
		DistinctHues:   *hues,
	})
	if err != nil {
		return err
	}

	log.Printf("run %s: %dx%d px, %d contours", res.RunID, res.Width, res.Height, len(res.Boundaries))
	for i, b := range res.Boundaries {
		kind := "object"
		if b.IsHole {
			kind = "hole"
		}
		log.Printf("  contour %d: %s, %d points, area %d px, closed=%v",
			b.ID, kind, len(b.BoundaryPixels), b.AreaPixels, res.Closed[i])
	}
	return nil
}

func runTransform(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var (
		in      = fs.String("in", "", "input raster (png/jpeg/gif)")
		out     = fs.String("out", "", "output PNG path")
		radius  = fs.Int("radius", 2, "transform radius in pixels")
		feather = fs.Int("feather", 0, "bleed edge feather width in pixels")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("missing required -in or -out")
	}

	img, err := imaging.NewImageCache().LoadNRGBA(*in)
	if err != nil {
		return err
	}

	switch name {
	case "erode":
		img = imaging.Erode(img, *radius)
	case "feather":
		img = imaging.FeatherInward(img, *radius)
	case "bleed":
		img = imaging.Bleed(img, *radius, *feather)
	}
	return imaging.SavePNG(img, *out)
}

func runCompose(args []string) error {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	var (
		layoutPath = fs.String("layout", "", "layout JSON file from the layout tool")
		partsDir   = fs.String("parts", ".", "directory of part images named <item>.png")
		out        = fs.String("out", "", "output PNG path")
		dpi        = fs.Float64("dpi", 300, "output raster density")
		tool       = fs.String("tool", "", "layout tool command to run instead of reading -layout")
		toolFile   = fs.String("tool-output", "layout.json", "layout file the tool writes")
		timeout    = fs.Duration("timeout", 2*time.Minute, "layout tool time limit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("missing required -out")
	}

	var l *layout.Layout
	var err error
	switch {
	case *tool != "":
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		l, err = layout.Invoke(ctx, layout.InvokeOptions{
			Command:    *tool,
			Args:       fs.Args(),
			Dir:        *partsDir,
			LayoutFile: *toolFile,
		})
	case *layoutPath != "":
		l, err = layout.ParseFile(*layoutPath)
	default:
		return fmt.Errorf("need either -layout or -tool")
	}
	if err != nil {
		return err
	}

	cache := imaging.NewImageCache()
	items := make([]imaging.PlacedItem, 0, len(l.Items))
	for _, it := range l.Items {
		img, err := cache.LoadNRGBA(filepath.Join(*partsDir, it.Name+".png"))
		if err != nil {
			return fmt.Errorf("part %q: %w", it.Name, err)
		}
		items = append(items, imaging.PlacedItem{
			Image:       img,
			CenterX:     it.Center.X,
			CenterY:     it.Center.Y,
			Width:       it.Size.W,
			Height:      it.Size.H,
			RotationDeg: it.RotationZDeg,
		})
	}

	canvas, err := imaging.Composite(items, imaging.CompositeOptions{
		CanvasWidthMM:  l.Meta.Card.W,
		CanvasHeightMM: l.Meta.Card.H,
		DPI:            *dpi,
	})
	if err != nil {
		return err
	}

	log.Printf("composed %d parts onto %gx%g mm card at %g dpi", len(items), l.Meta.Card.W, l.Meta.Card.H, *dpi)
	return imaging.SavePNG(canvas, *out)
}
