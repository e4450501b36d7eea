// Package photomask renders coil traces as 1:1 bitmaps for toner transfer
// or photoresist exposure.
package photomask

import (
	"fmt"
	"image"
	"math"

	"pcb-coil/internal/coil"
	"pcb-coil/pkg/geometry"
)

const mmPerInch = 25.4

// Options configures mask rendering.
type Options struct {
	DPI        float64 // Output resolution
	TraceWidth float64 // Copper width in mm
	Margin     float64 // Blank border in mm
	Mirror     bool    // Flip horizontally for toner transfer
	Negative   bool    // White copper on black
}

// DefaultOptions returns options for a typical 1200 DPI laser printer.
func DefaultOptions() Options {
	return Options{
		DPI:    1200,
		Margin: 2,
	}
}

// PixelsPerMM returns the mask scale.
func (o Options) PixelsPerMM() float64 {
	return o.DPI / mmPerInch
}

// Layout is the pixel geometry of a mask.
type Layout struct {
	Width, Height int
	Thickness     int             // trace thickness in pixels
	Polylines     [][]image.Point // one per path
	Closed        []bool
}

// Plan converts paths in millimetres into mask pixel coordinates.
func Plan(paths []coil.Path, opts Options) (Layout, error) {
	if len(paths) == 0 {
		return Layout{}, fmt.Errorf("photomask: no paths")
	}
	if opts.DPI <= 0 || opts.TraceWidth <= 0 {
		return Layout{}, fmt.Errorf("photomask: dpi %g and trace width %g must be positive", opts.DPI, opts.TraceWidth)
	}

	scale := opts.PixelsPerMM()
	bounds := coil.PathsBounds(paths).Inset(opts.TraceWidth/2 + opts.Margin)
	toPixels := geometry.Scale(scale, scale).Compose(geometry.Translation(-bounds.X, -bounds.Y))

	layout := Layout{
		Width:     int(math.Ceil(bounds.Width * scale)),
		Height:    int(math.Ceil(bounds.Height * scale)),
		Thickness: int(math.Max(1, math.Round(opts.TraceWidth*scale))),
	}
	for _, p := range paths {
		pts := make([]image.Point, len(p.Points))
		for i, pt := range p.Points {
			q := toPixels.Apply(pt)
			pts[i] = image.Point{X: int(math.Round(q.X)), Y: int(math.Round(q.Y))}
		}
		layout.Polylines = append(layout.Polylines, pts)
		layout.Closed = append(layout.Closed, p.Closed)
	}
	return layout, nil
}
