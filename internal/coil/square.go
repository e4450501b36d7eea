package coil

import (
	"gonum.org/v1/gonum/spatial/r2"

	"pcb-coil/pkg/geometry"
)

// squareDirections is the step order of the rectilinear spiral. Y grows
// downward, so right, down, left, up turns clockwise on screen.
var squareDirections = [4]r2.Vec{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// squareSpiral walks turns·4 axis-aligned steps from the origin. The step
// length starts at diameter/2 and grows by one pitch every second step,
// beginning with the third, so opposite sides of each turn end one pitch
// apart.
func squareSpiral(p SquareParams) Path {
	steps := p.Turns * 4
	pitch := p.Pitch()
	length := p.Diameter / 2

	pos := r2.Vec{}
	points := make([]geometry.Point2D, 0, steps+1)
	points = append(points, geometry.FromVec(pos))

	for i := 0; i < steps; i++ {
		if i > 0 && i%2 == 0 {
			length += pitch
		}
		pos = r2.Add(pos, r2.Scale(length, squareDirections[i%len(squareDirections)]))
		points = append(points, geometry.FromVec(pos))
	}
	return Path{Points: points}
}
