package photomask

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pcb-coil/internal/coil"
	"pcb-coil/pkg/geometry"
)

func TestPlan(t *testing.T) {
	path := coil.Path{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}}
	opts := Options{DPI: 254, TraceWidth: 1, Margin: 0.5} // 10 px/mm

	got, err := Plan([]coil.Path{path}, opts)
	if err != nil {
		t.Fatal(err)
	}

	want := Layout{
		Width:     120,
		Height:    70,
		Thickness: 10,
		Polylines: [][]image.Point{{{X: 10, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 60}}},
		Closed:    []bool{false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanThinTraceKeepsOnePixel(t *testing.T) {
	path := coil.Path{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	got, err := Plan([]coil.Path{path}, Options{DPI: 25.4, TraceWidth: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if got.Thickness != 1 {
		t.Errorf("got thickness %d, expected 1", got.Thickness)
	}
}

func TestPlanRejects(t *testing.T) {
	path := coil.Path{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	tests := []struct {
		name  string
		paths []coil.Path
		opts  Options
	}{
		{"no paths", nil, Options{DPI: 300, TraceWidth: 1}},
		{"zero dpi", []coil.Path{path}, Options{TraceWidth: 1}},
		{"zero width", []coil.Path{path}, Options{DPI: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Plan(tt.paths, tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}
