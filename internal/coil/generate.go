package coil

import (
	"fmt"
	"math"
)

// MaxPoints bounds the number of points a single generator call may
// produce. Larger requests fail with ErrInvalidParameter instead of
// allocating.
const MaxPoints = 10_000_000

// Resolution controls how curves are discretized.
type Resolution struct {
	RoundSamples int // samples over the whole round spiral
	ArcSamples   int // samples per sector arc
	RingSamples  int // samples per ring outline circle
}

// DefaultResolution returns the sampling used by Generate and Rings.
func DefaultResolution() Resolution {
	return Resolution{
		RoundSamples: 1000,
		ArcSamples:   100,
		RingSamples:  360,
	}
}

// WithRoundSamplesPerTurn returns a copy whose round-spiral sample count
// scales with the number of turns instead of being fixed.
// Requests beyond MaxPoints are clamped to MaxPoints+1 so that generation
// reports them instead of overflowing.
func (r Resolution) WithRoundSamplesPerTurn(perTurn int, turns float64) Resolution {
	n := math.Round(float64(perTurn) * turns)
	switch {
	case math.IsNaN(n) || n > MaxPoints:
		r.RoundSamples = MaxPoints + 1
	case n < 2:
		r.RoundSamples = 2
	default:
		r.RoundSamples = int(n)
	}
	return r
}

func (r Resolution) validate() error {
	if r.RoundSamples < 2 || r.ArcSamples < 2 || r.RingSamples < 3 {
		return fmt.Errorf("%w: resolution %+v too coarse", ErrInvalidParameter, r)
	}
	if r.RoundSamples > MaxPoints || r.ArcSamples > MaxPoints || r.RingSamples > MaxPoints {
		return fmt.Errorf("%w: resolution %+v exceeds %d points", ErrInvalidParameter, r, MaxPoints)
	}
	return nil
}

// checkPointCount rejects outputs of more than MaxPoints points. n is a
// float so that products of large turn counts cannot overflow.
func checkPointCount(shape Shape, n float64) error {
	if n > MaxPoints {
		return fmt.Errorf("%w: %v coil needs %.0f points, limit is %d", ErrInvalidParameter, shape, n, MaxPoints)
	}
	return nil
}

// Generate computes the centerline of the coil described by p using the
// default resolution.
func Generate(p Params) (Path, error) {
	return GenerateWith(p, DefaultResolution())
}

// GenerateWith computes the centerline of the coil described by p.
// On error no path is returned.
func GenerateWith(p Params, res Resolution) (Path, error) {
	if p == nil {
		return Path{}, fmt.Errorf("%w: no parameters", ErrInvalidParameter)
	}
	if err := p.Validate(); err != nil {
		return Path{}, err
	}
	if err := res.validate(); err != nil {
		return Path{}, err
	}

	switch v := p.(type) {
	case RoundParams:
		return roundSpiral(v, res.RoundSamples), nil
	case SquareParams:
		if err := checkPointCount(ShapeSquare, 4*float64(v.Turns)+1); err != nil {
			return Path{}, err
		}
		return squareSpiral(v), nil
	case SectorParams:
		return sectorSpiral(v, res.ArcSamples)
	}
	return Path{}, fmt.Errorf("%w: unsupported shape %v", ErrInvalidParameter, p.Shape())
}
