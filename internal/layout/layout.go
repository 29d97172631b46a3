// Package layout models the placement file produced by the external
// layout tool and knows how to invoke that tool as a subprocess.
//
// The layout file is the contract between the two programs: the tool
// arranges parts on a physical card and dumps where everything ended
// up; this side reads the dump to composite the artwork and derive
// cutlines. All geometry in the file is in millimeters with the origin
// at the card center and +Y up.
package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Layout is the parsed placement file.
type Layout struct {
	Meta  Meta   `json:"meta"`
	Items []Item `json:"items"`
}

// Meta carries the run identity and the card geometry the placements
// were computed against.
type Meta struct {
	JobID string `json:"job_id"`
	Units string `json:"units"`
	Card  Card   `json:"card"`

	// Slots holds the tool's derived layout constants (slot positions,
	// spacing, usable area). Opaque to this side; kept for logging and
	// troubleshooting.
	Slots map[string]float64 `json:"slots,omitempty"`
}

// Card is the physical card footprint in mm.
type Card struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Vec2 is a 2D position in mm, card-center origin, +Y up.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a 2D footprint in mm.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Item is one placed part.
type Item struct {
	Name         string  `json:"name"`
	Center       Vec2    `json:"center"`
	Size         Size    `json:"size"`
	RotationZDeg float64 `json:"rotation_z_deg"`
}

// Parse reads and validates a layout file.
//
// Unknown fields are tolerated so the tool can grow its dump without
// breaking this side. Validation covers only what downstream code
// depends on: mm units and a positive card footprint.
func Parse(r io.Reader) (*Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if l.Meta.Units != "" && l.Meta.Units != "mm" {
		return nil, fmt.Errorf("layout units %q not supported, want mm", l.Meta.Units)
	}
	if l.Meta.Card.W <= 0 || l.Meta.Card.H <= 0 {
		return nil, fmt.Errorf("layout card %gx%g mm is not positive", l.Meta.Card.W, l.Meta.Card.H)
	}
	for i, it := range l.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("layout item %d has no name", i)
		}
		if it.Size.W <= 0 || it.Size.H <= 0 {
			return nil, fmt.Errorf("layout item %q size %gx%g mm is not positive",
				it.Name, it.Size.W, it.Size.H)
		}
	}
	return &l, nil
}

// ParseFile is Parse over a file path.
func ParseFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Item looks up a placed part by name.
func (l *Layout) Item(name string) (*Item, bool) {
	for i := range l.Items {
		if l.Items[i].Name == name {
			return &l.Items[i], true
		}
	}
	return nil, false
}

// PxPerMM returns the pixel density for a DPI value.
func PxPerMM(dpi float64) float64 { return dpi / 25.4 }

// CanvasPx returns the card footprint in whole pixels at the given DPI,
// rounding to the nearest pixel.
func (l *Layout) CanvasPx(dpi float64) (w, h int) {
	s := PxPerMM(dpi)
	return int(l.Meta.Card.W*s + 0.5), int(l.Meta.Card.H*s + 0.5)
}

// InvokeOptions configures a run of the external layout tool.
type InvokeOptions struct {
	// Command is the tool executable; Args its full argument list.
	Command string
	Args    []string

	// Dir is the working directory for the run. The tool drops its
	// layout file there. Empty means the current directory.
	Dir string

	// LayoutFile is the name of the file the tool writes, relative to
	// Dir.
	LayoutFile string
}

// Invoke runs the layout tool, waits for it to finish, and parses the
// layout file it produced. Cancellation and timeouts come from ctx;
// tool output is folded into the error on failure since the tool is the
// only one who knows what went wrong.
func Invoke(ctx context.Context, opts InvokeOptions) (*Layout, error) {
	if opts.Command == "" {
		return nil, fmt.Errorf("layout: no command to invoke")
	}
	if opts.LayoutFile == "" {
		return nil, fmt.Errorf("layout: no layout file name given")
	}

	cmd := exec.CommandContext(ctx, opts.Command, opts.Args...)
	cmd.Dir = opts.Dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("layout tool failed: %w\n%s", err, out)
	}

	return ParseFile(filepath.Join(opts.Dir, opts.LayoutFile))
}
