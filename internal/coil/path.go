package coil

import (
	"pcb-coil/pkg/geometry"
)

// Path is an ordered polyline in millimetres produced by a generator.
// A closed path repeats its first point as its last point.
type Path struct {
	Points []geometry.Point2D
	Closed bool

	// Circle is set when the path samples an exact circle, so exporters
	// that support arcs can write the circle itself.
	Circle *Circle
}

// Circle describes an exact circle in millimetres.
type Circle struct {
	Center geometry.Point2D
	Radius float64
}

// Len returns the number of points.
func (p Path) Len() int {
	return len(p.Points)
}

// First returns the first point, or the zero point for an empty path.
func (p Path) First() geometry.Point2D {
	if len(p.Points) == 0 {
		return geometry.Point2D{}
	}
	return p.Points[0]
}

// Last returns the last point, or the zero point for an empty path.
func (p Path) Last() geometry.Point2D {
	if len(p.Points) == 0 {
		return geometry.Point2D{}
	}
	return p.Points[len(p.Points)-1]
}

// Bounds returns the bounding box of the centerline (trace width excluded).
func (p Path) Bounds() geometry.Rect {
	return geometry.BoundingBox(p.Points)
}

// Length returns the centerline length in mm.
func (p Path) Length() float64 {
	return geometry.PolylineLength(p.Points)
}

// Vertices returns the points for a writer that closes the outline itself:
// for a closed path the repeated final point is dropped.
func (p Path) Vertices() []geometry.Point2D {
	if p.Closed && len(p.Points) > 1 && p.First() == p.Last() {
		return p.Points[:len(p.Points)-1]
	}
	return p.Points
}

// PathsBounds returns the union of the bounds of all paths.
func PathsBounds(paths []Path) geometry.Rect {
	var r geometry.Rect
	for i, p := range paths {
		if i == 0 {
			r = p.Bounds()
			continue
		}
		r = r.Union(p.Bounds())
	}
	return r
}
