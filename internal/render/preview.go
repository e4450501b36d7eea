// Package render rasterizes coil paths for on-screen preview and image
// export.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"pcb-coil/internal/coil"
	"pcb-coil/pkg/geometry"
)

// Options configures how paths are rasterized.
type Options struct {
	Width, Height int // Output size in pixels

	// Scale is pixels per millimetre. Zero fits the paths into the image.
	Scale float64
	// Origin is the pixel position of the coil origin when Scale is set.
	// Zero means the image center.
	Origin geometry.Point2D
	// Margin in pixels kept free around fitted paths.
	Margin float64

	// StrokePixels is the drawn line thickness. If TraceWidth is set it is
	// used instead, converted to pixels at the effective scale.
	StrokePixels float64
	TraceWidth   float64 // mm

	Background color.RGBA
	Trace      color.RGBA
	ShowOrigin bool // Draw a small crosshair at the coil origin
}

// DefaultOptions returns default preview options.
func DefaultOptions() Options {
	return Options{
		Width:        600,
		Height:       600,
		Margin:       20,
		StrokePixels: 1.5,
		Background:   color.RGBA{R: 0x0B, G: 0x3D, B: 0x1E, A: 0xFF}, // solder mask green
		Trace:        color.RGBA{R: 0xE0, G: 0x9A, B: 0x3E, A: 0xFF}, // copper
		ShowOrigin:   true,
	}
}

// Transform returns the mm-to-pixel mapping the options describe for the
// given paths. Pixel y grows downward, matching the engine's convention.
func (o Options) Transform(paths []coil.Path) geometry.AffineTransform {
	w, h := float64(o.Width), float64(o.Height)
	if o.Scale <= 0 {
		return geometry.FitTransform(coil.PathsBounds(paths).Inset(o.TraceWidth/2), w, h, o.Margin)
	}
	origin := o.Origin
	if origin == (geometry.Point2D{}) {
		origin = geometry.Point2D{X: w / 2, Y: h / 2}
	}
	return geometry.Translation(origin.X, origin.Y).Compose(geometry.Scale(o.Scale, o.Scale))
}

// Preview draws the paths into a new image. Each path is drawn by moving to
// its first point and stroking straight segments to each following point.
func Preview(paths []coil.Path, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if opts.Width <= 0 || opts.Height <= 0 || len(paths) == 0 {
		return img
	}

	t := opts.Transform(paths)
	stroke := opts.StrokePixels
	if opts.TraceWidth > 0 {
		stroke = opts.TraceWidth * math.Abs(t.A)
	}
	if stroke < 1 {
		stroke = 1
	}

	r := vector.NewRasterizer(opts.Width, opts.Height)
	for _, p := range paths {
		strokePolyline(r, transformPoints(t, p.Points), stroke/2)
	}
	r.Draw(img, img.Bounds(), image.NewUniform(opts.Trace), image.Point{})

	if opts.ShowOrigin {
		drawCrosshair(img, t.Apply(geometry.Point2D{}), 6, darken(opts.Trace, 0.3))
	}
	return img
}

func transformPoints(t geometry.AffineTransform, pts []geometry.Point2D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// strokePolyline adds one quad per segment plus a joint polygon at every
// vertex. All quads share the same winding, so overlaps saturate instead of
// cancelling.
func strokePolyline(r *vector.Rasterizer, pts []geometry.Point2D, half float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		length := math.Hypot(d.X, d.Y)
		if length == 0 {
			continue
		}
		n := geometry.Point2D{X: -d.Y / length * half, Y: d.X / length * half}

		moveTo(r, a.Add(n))
		lineTo(r, b.Add(n))
		lineTo(r, b.Sub(n))
		lineTo(r, a.Sub(n))
		r.ClosePath()
	}

	if half < 1 {
		return
	}
	for _, p := range pts {
		addJoint(r, p, half)
	}
}

// addJoint fills an octagon around a vertex so thick strokes have no
// notches at corners. The octagon is wound the same way as the segment quads.
func addJoint(r *vector.Rasterizer, c geometry.Point2D, radius float64) {
	const sides = 8
	for i := 0; i < sides; i++ {
		a := -float64(i) * 2 * math.Pi / sides
		p := geometry.Point2D{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
		if i == 0 {
			moveTo(r, p)
		} else {
			lineTo(r, p)
		}
	}
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p geometry.Point2D) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p geometry.Point2D) {
	r.LineTo(float32(p.X), float32(p.Y))
}

// drawCrosshair draws a small plus sign centered on c.
func drawCrosshair(img *image.RGBA, c geometry.Point2D, size int, col color.RGBA) {
	cx, cy := int(math.Round(c.X)), int(math.Round(c.Y))
	bounds := img.Bounds()
	for d := -size; d <= size; d++ {
		if p := (image.Point{X: cx + d, Y: cy}); p.In(bounds) {
			img.SetRGBA(p.X, p.Y, col)
		}
		if p := (image.Point{X: cx, Y: cy + d}); p.In(bounds) {
			img.SetRGBA(p.X, p.Y, col)
		}
	}
}

// darken reduces the brightness of a color.
func darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * (1 - factor)),
		G: uint8(float64(c.G) * (1 - factor)),
		B: uint8(float64(c.B) * (1 - factor)),
		A: c.A,
	}
}
