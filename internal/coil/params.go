// Package coil generates the trace geometry of planar PCB inductor coils.
//
// Three topologies are supported: a round Archimedean spiral, a square
// rectilinear spiral and a closed wedge-shaped sector spiral. Each shape has
// its own parameter type so that only the fields relevant to the shape exist,
// and each parameter type is built through a validating constructor.
//
// All generators are pure: they keep no state between calls and may be used
// from any number of goroutines at once.
package coil

import (
	"fmt"
	"math"
	"strings"
)

// Shape identifies the coil topology.
type Shape int

const (
	ShapeRound  Shape = iota // Archimedean spiral
	ShapeSquare              // Rectilinear spiral
	ShapeSector              // Closed wedge spiral
)

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeSquare:
		return "square"
	case ShapeSector:
		return "sector"
	default:
		return "unknown"
	}
}

// Shapes lists all shapes in display order.
func Shapes() []Shape {
	return []Shape{ShapeRound, ShapeSquare, ShapeSector}
}

// ParseShape converts a shape name to a Shape. Matching is case-insensitive.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "round", "circle", "spiral":
		return ShapeRound, nil
	case "square", "rect", "rectangular":
		return ShapeSquare, nil
	case "sector", "wedge":
		return ShapeSector, nil
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidParameter, name)
}

// Params is implemented by RoundParams, SquareParams and SectorParams.
type Params interface {
	// Shape returns the topology the parameters describe.
	Shape() Shape

	// Pitch returns the distance between corresponding points of
	// adjacent turns: spacing plus trace width.
	Pitch() float64

	// Validate re-checks the constructor invariants. Values built with a
	// struct literal instead of a constructor are validated on generation.
	Validate() error
}

// RoundParams describes an Archimedean spiral coil.
type RoundParams struct {
	Turns      float64 // may be fractional
	Diameter   float64 // starting diameter in mm
	Spacing    float64 // gap between turns in mm
	TraceWidth float64 // copper width in mm
}

// NewRound returns validated round-coil parameters.
func NewRound(turns, diameter, spacing, traceWidth float64) (RoundParams, error) {
	p := RoundParams{Turns: turns, Diameter: diameter, Spacing: spacing, TraceWidth: traceWidth}
	if err := p.Validate(); err != nil {
		return RoundParams{}, err
	}
	return p, nil
}

func (p RoundParams) Shape() Shape { return ShapeRound }

func (p RoundParams) Pitch() float64 { return p.Spacing + p.TraceWidth }

// StartRadius returns the spiral radius at angle 0.
func (p RoundParams) StartRadius() float64 { return p.Diameter / 2 }

func (p RoundParams) Validate() error {
	if err := positive("turns", p.Turns); err != nil {
		return err
	}
	if err := positive("diameter", p.Diameter); err != nil {
		return err
	}
	return checkTrace(p.Spacing, p.TraceWidth)
}

// SquareParams describes a rectilinear spiral coil.
type SquareParams struct {
	Turns      int
	Diameter   float64 // first step length is Diameter/2
	Spacing    float64
	TraceWidth float64
}

// NewSquare returns validated square-coil parameters.
func NewSquare(turns int, diameter, spacing, traceWidth float64) (SquareParams, error) {
	p := SquareParams{Turns: turns, Diameter: diameter, Spacing: spacing, TraceWidth: traceWidth}
	if err := p.Validate(); err != nil {
		return SquareParams{}, err
	}
	return p, nil
}

func (p SquareParams) Shape() Shape { return ShapeSquare }

func (p SquareParams) Pitch() float64 { return p.Spacing + p.TraceWidth }

func (p SquareParams) Validate() error {
	if p.Turns < 1 {
		return paramErr("turns", float64(p.Turns), "must be at least 1")
	}
	if err := positive("diameter", p.Diameter); err != nil {
		return err
	}
	return checkTrace(p.Spacing, p.TraceWidth)
}

// SectorParams describes a wedge-shaped spiral bounded by two radii and
// swept symmetrically about angle 0.
type SectorParams struct {
	Turns        int
	InnerRadius  float64
	OuterRadius  float64
	AngleDegrees float64 // full opening angle, half on each side of 0
	Spacing      float64
	TraceWidth   float64
}

// NewSector returns validated sector-coil parameters. Crossing radii caused
// by too many turns are reported by Generate as ErrDegenerateGeometry.
func NewSector(turns int, innerRadius, outerRadius, angleDegrees, spacing, traceWidth float64) (SectorParams, error) {
	p := SectorParams{
		Turns:        turns,
		InnerRadius:  innerRadius,
		OuterRadius:  outerRadius,
		AngleDegrees: angleDegrees,
		Spacing:      spacing,
		TraceWidth:   traceWidth,
	}
	if err := p.Validate(); err != nil {
		return SectorParams{}, err
	}
	return p, nil
}

func (p SectorParams) Shape() Shape { return ShapeSector }

func (p SectorParams) Pitch() float64 { return p.Spacing + p.TraceWidth }

// HalfAngle returns half the opening angle in radians.
func (p SectorParams) HalfAngle() float64 {
	return p.AngleDegrees * math.Pi / 360
}

func (p SectorParams) Validate() error {
	if p.Turns < 1 {
		return paramErr("turns", float64(p.Turns), "must be at least 1")
	}
	if err := positive("inner radius", p.InnerRadius); err != nil {
		return err
	}
	if err := positive("outer radius", p.OuterRadius); err != nil {
		return err
	}
	if p.OuterRadius <= p.InnerRadius {
		return paramErr("outer radius", p.OuterRadius, fmt.Sprintf("must exceed inner radius %g", p.InnerRadius))
	}
	if err := positive("angle", p.AngleDegrees); err != nil {
		return err
	}
	if p.AngleDegrees > 360 {
		return paramErr("angle", p.AngleDegrees, "must not exceed 360 degrees")
	}
	return checkTrace(p.Spacing, p.TraceWidth)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return paramErr(field, v, "must be a finite number")
	}
	if v <= 0 {
		return paramErr(field, v, "must be positive")
	}
	return nil
}

func checkTrace(spacing, width float64) error {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return paramErr("spacing", spacing, "must be a finite number")
	}
	if spacing < 0 {
		return paramErr("spacing", spacing, "must not be negative")
	}
	return positive("trace width", width)
}
