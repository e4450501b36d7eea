package coil

import (
	"fmt"
	"math"
)

// Record is the flat, serializable form of a parameter set. Forms, project
// files, presets and command-line flags fill a Record; Params converts it
// into the shape-specific type through the validating constructor.
// Fields that do not apply to the selected shape are ignored.
type Record struct {
	Shape        string  `json:"shape"`
	Turns        float64 `json:"turns"`
	Diameter     float64 `json:"diameter_mm,omitempty"`
	InnerRadius  float64 `json:"inner_radius_mm,omitempty"`
	OuterRadius  float64 `json:"outer_radius_mm,omitempty"`
	AngleDegrees float64 `json:"angle_deg,omitempty"`
	Spacing      float64 `json:"spacing_mm"`
	TraceWidth   float64 `json:"trace_width_mm"`
}

// Params validates the record and returns the shape-specific parameters.
func (r Record) Params() (Params, error) {
	shape, err := ParseShape(r.Shape)
	if err != nil {
		return nil, err
	}

	switch shape {
	case ShapeRound:
		return NewRound(r.Turns, r.Diameter, r.Spacing, r.TraceWidth)
	case ShapeSquare:
		turns, err := wholeTurns(r.Turns)
		if err != nil {
			return nil, err
		}
		return NewSquare(turns, r.Diameter, r.Spacing, r.TraceWidth)
	default:
		turns, err := wholeTurns(r.Turns)
		if err != nil {
			return nil, err
		}
		return NewSector(turns, r.InnerRadius, r.OuterRadius, r.AngleDegrees, r.Spacing, r.TraceWidth)
	}
}

// RecordOf flattens shape-specific parameters into a Record.
func RecordOf(p Params) Record {
	switch v := p.(type) {
	case RoundParams:
		return Record{Shape: ShapeRound.String(), Turns: v.Turns, Diameter: v.Diameter,
			Spacing: v.Spacing, TraceWidth: v.TraceWidth}
	case SquareParams:
		return Record{Shape: ShapeSquare.String(), Turns: float64(v.Turns), Diameter: v.Diameter,
			Spacing: v.Spacing, TraceWidth: v.TraceWidth}
	case SectorParams:
		return Record{Shape: ShapeSector.String(), Turns: float64(v.Turns),
			InnerRadius: v.InnerRadius, OuterRadius: v.OuterRadius, AngleDegrees: v.AngleDegrees,
			Spacing: v.Spacing, TraceWidth: v.TraceWidth}
	}
	return Record{}
}

func wholeTurns(t float64) (int, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
		return 0, paramErr("turns", t, "must be a whole number for this shape")
	}
	if t > math.MaxInt32 {
		return 0, paramErr("turns", t, fmt.Sprintf("must not exceed %d", math.MaxInt32))
	}
	return int(t), nil
}
