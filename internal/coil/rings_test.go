package coil

import (
	"errors"
	"math"
	"testing"

	"pcb-coil/pkg/geometry"
)

func TestRingsRound(t *testing.T) {
	p, _ := NewRound(3, 10, 0.5, 0.5)
	rings, err := Rings(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 6 {
		t.Fatalf("got %d rings, expected 6", len(rings))
	}

	want := []float64{5, 4.5, 6, 5.5, 7, 6.5}
	for i, ring := range rings {
		if !ring.Closed || ring.First() != ring.Last() {
			t.Errorf("ring %d is not closed", i)
		}
		if ring.Len() != 361 {
			t.Errorf("ring %d: got %d points, expected 361", i, ring.Len())
		}
		if ring.Circle == nil || ring.Circle.Radius != want[i] || ring.Circle.Center != (geometry.Point2D{}) {
			t.Errorf("ring %d: got circle %+v, expected radius %v at the origin", i, ring.Circle, want[i])
		}
		for _, pt := range ring.Points {
			if r := pt.Norm(); math.Abs(r-want[i]) > 1e-9 {
				t.Fatalf("ring %d: got radius %v, expected %v", i, r, want[i])
			}
		}
	}
}

func TestRingsSkipsNonPositiveInnerEdge(t *testing.T) {
	p, _ := NewSquare(2, 1, 0.2, 0.5)
	rings, err := Rings(p)
	if err != nil {
		t.Fatal(err)
	}
	// First turn: outer 1, inner 0 (dropped). Second turn: outer 2.4, inner 1.4.
	if len(rings) != 3 {
		t.Fatalf("got %d rings, expected 3", len(rings))
	}
	for i, ring := range rings {
		if ring.Circle != nil {
			t.Errorf("square ring %d carries a circle", i)
		}
	}
	if w := rings[0].Bounds().Width; math.Abs(w-1) > 1e-9 {
		t.Errorf("got first ring width %v, expected 1", w)
	}
	if w := rings[2].Bounds().Width; math.Abs(w-1.4) > 1e-9 {
		t.Errorf("got last ring width %v, expected 1.4", w)
	}
}

func TestRingsPointLimit(t *testing.T) {
	p, _ := NewRound(1e9, 10, 0.2, 0.2)
	if _, err := Rings(p); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, expected ErrInvalidParameter", err)
	}
}

func TestRingsRejectsSector(t *testing.T) {
	p, _ := NewSector(1, 5, 10, 90, 0.2, 0.2)
	if _, err := Rings(p); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, expected ErrInvalidParameter", err)
	}
}
