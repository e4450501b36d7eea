package canvas

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"pcb-coil/internal/coil"
	"pcb-coil/pkg/geometry"
)

func TestZoomClamp(t *testing.T) {
	test.NewApp()
	cc := NewCoilCanvas()

	var got float64
	cc.OnZoomChange(func(z float64) { got = z })
	cc.SetZoom(1e6)
	if got != maxZoom {
		t.Errorf("got zoom %v, expected %v", got, maxZoom)
	}
	if cc.GetFitToWindow() {
		t.Error("SetZoom left fit-to-window enabled")
	}
	cc.SetZoom(0)
	if cc.GetZoom() != minZoom {
		t.Errorf("got zoom %v, expected %v", cc.GetZoom(), minZoom)
	}
}

func TestDrawMapsClicksToCoil(t *testing.T) {
	test.NewApp()
	cc := NewCoilCanvas()
	cc.SetPaths([]coil.Path{{Points: []geometry.Point2D{{X: -10, Y: 0}, {X: 10, Y: 0}}}})
	cc.SetZoom(5)

	img := cc.draw(200, 100)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("got bounds %v", img.Bounds())
	}

	var x, y float64
	cc.OnLeftClick(func(cx, cy float64) { x, y = cx, cy })
	cc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(150, 50)})
	if math.Abs(x-10) > 1e-6 || math.Abs(y) > 1e-6 {
		t.Errorf("got (%v, %v), expected (10, 0)", x, y)
	}
}
