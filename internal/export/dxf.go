// Package export serializes coil paths into drawing-exchange files.
package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"pcb-coil/internal/coil"
)

// DXFOptions configures DXF output.
type DXFOptions struct {
	Layer string            // Layer the polylines are placed on
	Color color.ColorNumber // Layer color
}

// DefaultDXFOptions returns the options used when none are given.
func DefaultDXFOptions() DXFOptions {
	return DXFOptions{
		Layer: "COIL",
		Color: color.Red,
	}
}

// WriteDXF writes paths to filename at 1:1 scale in millimetres. A path
// that describes an exact circle becomes a CIRCLE entity. Every other path
// becomes one LWPOLYLINE entity, flagged closed when the path is closed.
func WriteDXF(filename string, paths []coil.Path, opts DXFOptions) error {
	if len(paths) == 0 {
		return fmt.Errorf("write dxf %s: no paths", filename)
	}

	d := dxf.NewDrawing()
	if opts.Layer != "" {
		if _, err := d.AddLayer(opts.Layer, opts.Color, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("write dxf %s: add layer: %w", filename, err)
		}
	}

	for i, p := range paths {
		if c := p.Circle; c != nil {
			if _, err := d.Circle(c.Center.X, c.Center.Y, 0, c.Radius); err != nil {
				return fmt.Errorf("write dxf %s: path %d: %w", filename, i, err)
			}
			continue
		}
		verts := p.Vertices()
		if len(verts) < 2 {
			return fmt.Errorf("write dxf %s: path %d has %d points", filename, i, len(verts))
		}
		coords := make([][]float64, len(verts))
		for j, v := range verts {
			coords[j] = []float64{v.X, v.Y}
		}
		if _, err := d.LwPolyline(p.Closed, coords...); err != nil {
			return fmt.Errorf("write dxf %s: path %d: %w", filename, i, err)
		}
	}

	if err := d.SaveAs(filename); err != nil {
		return fmt.Errorf("write dxf %s: %w", filename, err)
	}
	return nil
}
