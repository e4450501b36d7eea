// Package canvas provides a coil preview widget with pan and zoom.
package canvas

import (
	"image"
	"sync"

	"pcb-coil/internal/coil"
	"pcb-coil/internal/render"
	"pcb-coil/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Zoom is expressed in pixels per millimetre.
const (
	minZoom     = 0.5
	maxZoom     = 400.0
	zoomStep    = 1.25
	defaultZoom = 10.0
)

// CoilCanvas displays coil paths rendered at a chosen zoom, or fitted to
// the visible area.
type CoilCanvas struct {
	widget.BaseWidget

	mu    sync.Mutex
	paths []coil.Path
	opts  render.Options

	// Display state
	raster *fynecanvas.Raster
	zoom   float64
	pan    geometry.Point2D // pixel offset of the origin from the center

	// Fit to window
	fitToWindow bool

	// Last transform used to draw, for mapping clicks back to mm
	lastTransform geometry.AffineTransform
	lastOutput    *image.RGBA

	// Callbacks
	onZoomChange func(zoom float64)
	onLeftClick  func(x, y float64) // coil coordinates in mm
}

// NewCoilCanvas creates a new preview canvas.
func NewCoilCanvas() *CoilCanvas {
	cc := &CoilCanvas{
		opts:        render.DefaultOptions(),
		zoom:        defaultZoom,
		fitToWindow: true,
	}
	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.ScaleMode = fynecanvas.ImageScalePixels
	cc.raster.SetMinSize(fyne.NewSize(400, 400))
	cc.ExtendBaseWidget(cc)
	return cc
}

// SetPaths replaces the displayed geometry.
func (cc *CoilCanvas) SetPaths(paths []coil.Path) {
	cc.mu.Lock()
	cc.paths = paths
	cc.mu.Unlock()
	cc.Refresh()
}

// SetTraceWidth draws traces at their true width in mm. Zero uses a thin
// fixed stroke.
func (cc *CoilCanvas) SetTraceWidth(mm float64) {
	cc.mu.Lock()
	cc.opts.TraceWidth = mm
	cc.mu.Unlock()
	cc.Refresh()
}

// SetShowOrigin toggles the origin crosshair.
func (cc *CoilCanvas) SetShowOrigin(show bool) {
	cc.mu.Lock()
	cc.opts.ShowOrigin = show
	cc.mu.Unlock()
	cc.Refresh()
}

// SetZoom sets the zoom level in pixels per mm and disables fitting.
func (cc *CoilCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	cc.mu.Lock()
	cc.zoom = zoom
	cc.fitToWindow = false
	cc.mu.Unlock()
	cc.Refresh()

	if cc.onZoomChange != nil {
		cc.onZoomChange(zoom)
	}
}

// GetZoom returns the current zoom level. While fitting it is the zoom of
// the last drawn frame.
func (cc *CoilCanvas) GetZoom() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.fitToWindow && cc.lastTransform.A != 0 {
		return cc.lastTransform.A
	}
	return cc.zoom
}

// ZoomIn increases the zoom level.
func (cc *CoilCanvas) ZoomIn() {
	cc.SetZoom(cc.GetZoom() * zoomStep)
}

// ZoomOut decreases the zoom level.
func (cc *CoilCanvas) ZoomOut() {
	cc.SetZoom(cc.GetZoom() / zoomStep)
}

// SetFitToWindow enables or disables fitting the coil to the widget.
func (cc *CoilCanvas) SetFitToWindow(fit bool) {
	cc.mu.Lock()
	cc.fitToWindow = fit
	if fit {
		cc.pan = geometry.Point2D{}
	}
	cc.mu.Unlock()
	cc.Refresh()
}

// GetFitToWindow returns the current fit-to-window state.
func (cc *CoilCanvas) GetFitToWindow() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.fitToWindow
}

// OnZoomChange sets a callback for zoom changes.
func (cc *CoilCanvas) OnZoomChange(callback func(zoom float64)) {
	cc.onZoomChange = callback
}

// OnLeftClick sets a callback for left-click events.
// Coordinates are in coil space (mm).
func (cc *CoilCanvas) OnLeftClick(callback func(x, y float64)) {
	cc.onLeftClick = callback
}

// GetRenderedOutput returns the last rendered frame.
func (cc *CoilCanvas) GetRenderedOutput() *image.RGBA {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lastOutput
}

// CanvasToCoil converts widget pixel coordinates to coil coordinates.
func (cc *CoilCanvas) CanvasToCoil(canvasX, canvasY float64) (x, y float64) {
	cc.mu.Lock()
	t := cc.lastTransform
	cc.mu.Unlock()
	if t.A == 0 || t.D == 0 {
		return 0, 0
	}
	return (canvasX - t.TX) / t.A, (canvasY - t.TY) / t.D
}

// Refresh redraws the preview.
func (cc *CoilCanvas) Refresh() {
	cc.raster.Refresh()
}

// Scrolled zooms with the mouse wheel.
func (cc *CoilCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		cc.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		cc.ZoomOut()
	}
}

// Dragged pans the view.
func (cc *CoilCanvas) Dragged(ev *fyne.DragEvent) {
	cc.mu.Lock()
	if cc.fitToWindow {
		// Freeze the fitted view so panning starts from what is on screen.
		if cc.lastTransform.A != 0 {
			cc.zoom = cc.lastTransform.A
		}
		cc.fitToWindow = false
	}
	cc.pan = cc.pan.Add(geometry.Point2D{X: float64(ev.Dragged.DX), Y: float64(ev.Dragged.DY)})
	cc.mu.Unlock()
	cc.Refresh()
}

// DragEnd implements fyne.Draggable.
func (cc *CoilCanvas) DragEnd() {}

// Tapped reports left clicks in coil coordinates.
func (cc *CoilCanvas) Tapped(ev *fyne.PointEvent) {
	if cc.onLeftClick == nil {
		return
	}
	x, y := cc.CanvasToCoil(float64(ev.Position.X), float64(ev.Position.Y))
	cc.onLeftClick(x, y)
}

// draw is the raster drawing function.
func (cc *CoilCanvas) draw(w, h int) image.Image {
	cc.mu.Lock()
	opts := cc.opts
	paths := cc.paths
	opts.Width, opts.Height = w, h
	if !cc.fitToWindow {
		opts.Scale = cc.zoom
		opts.Origin = geometry.Point2D{X: float64(w) / 2, Y: float64(h) / 2}.Add(cc.pan)
	}
	cc.mu.Unlock()

	output := render.Preview(paths, opts)

	cc.mu.Lock()
	cc.lastTransform = opts.Transform(paths)
	cc.lastOutput = output
	cc.mu.Unlock()
	return output
}

// CreateRenderer implements fyne.Widget.
func (cc *CoilCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cc.raster)
}
