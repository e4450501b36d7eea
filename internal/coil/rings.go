package coil

import (
	"fmt"
	"math"

	"pcb-coil/pkg/geometry"
)

// Rings returns the copper edge outlines of a round or square coil drawn as
// concentric closed rings: for turn i the outer edge sits i pitches outside
// the starting size and the inner edge one trace width inside it. Inner
// edges that would have no positive size are omitted. Fractional round turns
// are rounded up to whole rings.
//
// Sector coils have no ring form and return ErrInvalidParameter.
func Rings(p Params) ([]Path, error) {
	return RingsWith(p, DefaultResolution())
}

// RingsWith is Rings with an explicit resolution for the circle outlines.
func RingsWith(p Params, res Resolution) ([]Path, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no parameters", ErrInvalidParameter)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := res.validate(); err != nil {
		return nil, err
	}

	switch v := p.(type) {
	case RoundParams:
		if err := checkPointCount(ShapeRound, 2*math.Ceil(v.Turns)*float64(res.RingSamples+1)); err != nil {
			return nil, err
		}
		n := int(math.Ceil(v.Turns))
		rings := make([]Path, 0, 2*n)
		for i := 0; i < n; i++ {
			outer := v.StartRadius() + float64(i)*v.Pitch()
			rings = append(rings, circleRing(outer, res.RingSamples))
			if inner := outer - v.TraceWidth; inner > 0 {
				rings = append(rings, circleRing(inner, res.RingSamples))
			}
		}
		return rings, nil
	case SquareParams:
		if err := checkPointCount(ShapeSquare, 2*float64(v.Turns)*5); err != nil {
			return nil, err
		}
		rings := make([]Path, 0, 2*v.Turns)
		for i := 0; i < v.Turns; i++ {
			outer := v.Diameter + 2*float64(i)*v.Pitch()
			rings = append(rings, squareRing(outer))
			if inner := outer - 2*v.TraceWidth; inner > 0 {
				rings = append(rings, squareRing(inner))
			}
		}
		return rings, nil
	}
	return nil, fmt.Errorf("%w: %v coils have no ring outline", ErrInvalidParameter, p.Shape())
}

func circleRing(radius float64, samples int) Path {
	points := geometry.GenerateCirclePoints(0, 0, radius, samples)
	points = append(points, points[0])
	return Path{Points: points, Closed: true, Circle: &Circle{Radius: radius}}
}

func squareRing(size float64) Path {
	h := size / 2
	return Path{
		Points: []geometry.Point2D{
			{X: -h, Y: -h},
			{X: h, Y: -h},
			{X: h, Y: h},
			{X: -h, Y: h},
			{X: -h, Y: -h},
		},
		Closed: true,
	}
}
