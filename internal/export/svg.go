package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jbeda/geom"

	"pcb-coil/internal/coil"
)

// SVGOptions configures SVG output.
type SVGOptions struct {
	StrokeWidth float64 // trace width in mm; 0 draws a hairline
	Margin      float64 // extra space around the paths in mm
	Stroke      string  // CSS color
}

// DefaultSVGOptions returns the options used when none are given.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		StrokeWidth: 0,
		Margin:      1,
		Stroke:      "#b87333",
	}
}

// svgWriter emits SVG elements. Write errors are sticky and reported once
// by flush.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(viewBox geom.Rect) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     width="%gmm" height="%gmm"
     viewBox="%g %g %g %g"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Width(), viewBox.Height(), viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (s *svgWriter) end() {
	s.printf("</svg>\n")
}

func (s *svgWriter) path(p coil.Path, style string) {
	verts := p.Vertices()
	if len(verts) == 0 {
		return
	}
	s.printf("<path style='%s' d='M%g,%g", style, verts[0].X, verts[0].Y)
	for _, v := range verts[1:] {
		s.printf("\n  L%g,%g", v.X, v.Y)
	}
	if p.Closed {
		s.printf(" Z")
	}
	s.printf("'/>\n")
}

func (s *svgWriter) flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

// WriteSVG writes paths as an SVG document whose user units are millimetres.
func WriteSVG(w io.Writer, paths []coil.Path, opts SVGOptions) error {
	if len(paths) == 0 {
		return fmt.Errorf("write svg: no paths")
	}

	viewBox := pathsViewBox(paths, opts.Margin+opts.StrokeWidth/2)

	style := fmt.Sprintf("fill: none; stroke: %s; stroke-linecap: round; stroke-linejoin: round; ", opts.Stroke)
	if opts.StrokeWidth > 0 {
		style += fmt.Sprintf("stroke-width: %g", opts.StrokeWidth)
	} else {
		style += "stroke-width: 1; vector-effect: non-scaling-stroke"
	}

	s := &svgWriter{w: bufio.NewWriter(w)}
	s.start(viewBox)
	for _, p := range paths {
		s.path(p, style)
	}
	s.end()
	if err := s.flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// SaveSVG writes paths to an SVG file.
func SaveSVG(filename string, paths []coil.Path, opts SVGOptions) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	if err := WriteSVG(f, paths, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// pathsViewBox returns the bounds of all points grown by margin.
func pathsViewBox(paths []coil.Path, margin float64) geom.Rect {
	first := paths[0].First()
	r := geom.Rect{Min: geom.Coord{X: first.X, Y: first.Y}, Max: geom.Coord{X: first.X, Y: first.Y}}
	for _, p := range paths {
		for _, pt := range p.Points {
			r.ExpandToContainCoord(geom.Coord{X: pt.X, Y: pt.Y})
		}
	}
	r.Min = r.Min.Minus(geom.Coord{X: margin, Y: margin})
	r.Max = r.Max.Plus(geom.Coord{X: margin, Y: margin})
	return r
}
