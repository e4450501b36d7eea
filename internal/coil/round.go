package coil

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"pcb-coil/pkg/geometry"
)

// roundSpiral samples r(θ) = a + bθ for θ in [0, 2π·turns], where a is the
// starting radius and b grows the radius by one pitch per revolution.
func roundSpiral(p RoundParams, samples int) Path {
	a := p.StartRadius()
	b := p.Pitch() / (2 * math.Pi)

	thetas := floats.Span(make([]float64, samples), 0, 2*math.Pi*p.Turns)

	points := make([]geometry.Point2D, samples)
	for i, theta := range thetas {
		r := a + b*theta
		points[i] = geometry.Point2D{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return Path{Points: points}
}
