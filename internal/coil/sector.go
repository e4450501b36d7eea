package coil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"pcb-coil/pkg/geometry"
)

// sectorTurn is the radius pair one winding of a sector coil is drawn on.
// Each winding moves the inner radius out and the outer radius in by one
// pitch.
type sectorTurn struct {
	inner, outer float64
}

func (t sectorTurn) next(pitch float64) sectorTurn {
	return sectorTurn{inner: t.inner + pitch, outer: t.outer - pitch}
}

// sectorSpiral builds the closed outline of a wedge spiral. Each winding is
// an inner arc from -half to +half, a radial jump to the outer arc, the outer
// arc back to -half, and a radial step to the next inner radius. The last
// winding returns to the first point instead.
func sectorSpiral(p SectorParams, arcSamples int) (Path, error) {
	pitch := p.Pitch()
	last := float64(p.Turns - 1)
	if innerEnd, outerEnd := p.InnerRadius+pitch*last, p.OuterRadius-pitch*last; outerEnd <= innerEnd {
		return Path{}, fmt.Errorf("%w: %d turns at pitch %g need more than %g mm between radii %g and %g",
			ErrDegenerateGeometry, p.Turns, pitch, 2*pitch*last, p.InnerRadius, p.OuterRadius)
	}

	if err := checkPointCount(ShapeSector, float64(p.Turns)*2*float64(arcSamples)+1); err != nil {
		return Path{}, err
	}

	half := p.HalfAngle()
	forward := floats.Span(make([]float64, arcSamples), -half, half)
	backward := floats.Span(make([]float64, arcSamples), half, -half)

	points := make([]geometry.Point2D, 0, p.Turns*(2*arcSamples)+1)
	turn := sectorTurn{inner: p.InnerRadius, outer: p.OuterRadius}
	for t := 0; t < p.Turns; t++ {
		points = appendSectorTurn(points, turn, forward, backward, t > 0)

		if t == p.Turns-1 {
			points = append(points, points[0])
			break
		}
		turn = turn.next(pitch)
		points = append(points, polar(turn.inner, -half))
	}
	return Path{Points: points, Closed: true}, nil
}

// appendSectorTurn appends the inner and outer arcs of one winding. When
// joined is set the first inner sample is skipped because the previous
// winding already ended on it.
func appendSectorTurn(points []geometry.Point2D, turn sectorTurn, forward, backward []float64, joined bool) []geometry.Point2D {
	start := 0
	if joined {
		start = 1
	}
	for _, a := range forward[start:] {
		points = append(points, polar(turn.inner, a))
	}
	for _, a := range backward {
		points = append(points, polar(turn.outer, a))
	}
	return points
}

func polar(r, angle float64) geometry.Point2D {
	return geometry.Point2D{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}
