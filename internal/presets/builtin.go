package presets

import "pcb-coil/internal/coil"

// builtins returns the presets registered at init. Dimensions are in mm.
func builtins() []*Preset {
	return []*Preset{
		{
			Name:        "round-20",
			Description: "10 turn Archimedean spiral, 20 mm across",
			Params: coil.Record{
				Shape:      coil.ShapeRound.String(),
				Turns:      10,
				Diameter:   20,
				Spacing:    0.3,
				TraceWidth: 0.5,
			},
		},
		{
			Name:        "round-40",
			Description: "20 turn Archimedean spiral, 40 mm across",
			Params: coil.Record{
				Shape:      coil.ShapeRound.String(),
				Turns:      20,
				Diameter:   40,
				Spacing:    0.3,
				TraceWidth: 0.6,
			},
		},
		{
			Name:        "square-20",
			Description: "8 turn rectilinear spiral, 20 mm wide",
			Params: coil.Record{
				Shape:      coil.ShapeSquare.String(),
				Turns:      8,
				Diameter:   20,
				Spacing:    0.3,
				TraceWidth: 0.5,
			},
		},
		{
			Name:        "sector-60",
			Description: "4 turn 60 degree wedge for segmented stators",
			Params: coil.Record{
				Shape:        coil.ShapeSector.String(),
				Turns:        4,
				InnerRadius:  5,
				OuterRadius:  20,
				AngleDegrees: 60,
				Spacing:      0.5,
				TraceWidth:   0.5,
			},
		},
		{
			Name:        "sector-30",
			Description: "3 turn 30 degree wedge for 12 slot stators",
			Params: coil.Record{
				Shape:        coil.ShapeSector.String(),
				Turns:        3,
				InnerRadius:  8,
				OuterRadius:  25,
				AngleDegrees: 30,
				Spacing:      0.3,
				TraceWidth:   0.4,
			},
		},
	}
}
