// Package dialogs provides application dialogs and the coil parameter form.
package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"pcb-coil/internal/coil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Field names the numeric inputs of the form.
type Field string

const (
	FieldTurns       Field = "turns"
	FieldDiameter    Field = "diameter"
	FieldInnerRadius Field = "inner radius"
	FieldOuterRadius Field = "outer radius"
	FieldAngle       Field = "angle"
	FieldSpacing     Field = "spacing"
	FieldTraceWidth  Field = "trace width"
)

var fieldLabels = map[Field]string{
	FieldTurns:       "Turns",
	FieldDiameter:    "Diameter (mm)",
	FieldInnerRadius: "Inner radius (mm)",
	FieldOuterRadius: "Outer radius (mm)",
	FieldAngle:       "Angle (deg)",
	FieldSpacing:     "Spacing (mm)",
	FieldTraceWidth:  "Trace width (mm)",
}

var fieldOrder = []Field{
	FieldTurns, FieldDiameter, FieldInnerRadius, FieldOuterRadius,
	FieldAngle, FieldSpacing, FieldTraceWidth,
}

// FieldsFor returns the inputs shown for a shape.
func FieldsFor(shape coil.Shape) []Field {
	switch shape {
	case coil.ShapeSector:
		return []Field{FieldTurns, FieldInnerRadius, FieldOuterRadius, FieldAngle, FieldSpacing, FieldTraceWidth}
	default:
		return []Field{FieldTurns, FieldDiameter, FieldSpacing, FieldTraceWidth}
	}
}

// ParseRecord builds a Record from the text of the inputs relevant to
// shape. Inputs for other shapes are ignored.
func ParseRecord(shape coil.Shape, values map[Field]string) (coil.Record, error) {
	r := coil.Record{Shape: shape.String()}
	for _, f := range FieldsFor(shape) {
		text := strings.TrimSpace(values[f])
		if text == "" {
			return coil.Record{}, fmt.Errorf("%s is required", f)
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return coil.Record{}, fmt.Errorf("%s: %q is not a number", f, text)
		}
		switch f {
		case FieldTurns:
			r.Turns = v
		case FieldDiameter:
			r.Diameter = v
		case FieldInnerRadius:
			r.InnerRadius = v
		case FieldOuterRadius:
			r.OuterRadius = v
		case FieldAngle:
			r.AngleDegrees = v
		case FieldSpacing:
			r.Spacing = v
		case FieldTraceWidth:
			r.TraceWidth = v
		}
	}
	return r, nil
}

// RecordValues formats every field of r for the inputs.
func RecordValues(r coil.Record) map[Field]string {
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return map[Field]string{
		FieldTurns:       format(r.Turns),
		FieldDiameter:    format(r.Diameter),
		FieldInnerRadius: format(r.InnerRadius),
		FieldOuterRadius: format(r.OuterRadius),
		FieldAngle:       format(r.AngleDegrees),
		FieldSpacing:     format(r.Spacing),
		FieldTraceWidth:  format(r.TraceWidth),
	}
}

// CoilForm is the parameter entry panel. Only the inputs relevant to the
// selected shape are visible.
type CoilForm struct {
	shapeSelect *widget.Select
	entries     map[Field]*widget.Entry
	rows        map[Field]*fyne.Container
	errorLabel  *widget.Label
	content     *fyne.Container

	// Callbacks
	onDraw func(coil.Params)
}

// NewCoilForm creates a form initialised from r. onDraw receives validated
// parameters when the user presses Draw.
func NewCoilForm(r coil.Record, onDraw func(coil.Params)) *CoilForm {
	f := &CoilForm{
		entries: make(map[Field]*widget.Entry),
		rows:    make(map[Field]*fyne.Container),
		onDraw:  onDraw,
	}

	names := make([]string, 0, len(coil.Shapes()))
	for _, s := range coil.Shapes() {
		names = append(names, s.String())
	}
	f.shapeSelect = widget.NewSelect(names, func(string) { f.updateVisibility() })

	rows := []fyne.CanvasObject{
		container.NewGridWithColumns(2, widget.NewLabel("Shape"), f.shapeSelect),
	}
	for _, field := range fieldOrder {
		entry := widget.NewEntry()
		f.entries[field] = entry
		row := container.NewGridWithColumns(2, widget.NewLabel(fieldLabels[field]), entry)
		f.rows[field] = row
		rows = append(rows, row)
	}

	f.errorLabel = widget.NewLabel("")
	f.errorLabel.Wrapping = fyne.TextWrapWord
	f.errorLabel.Importance = widget.DangerImportance

	drawBtn := widget.NewButton("Draw", f.submit)
	drawBtn.Importance = widget.HighImportance

	rows = append(rows, drawBtn, f.errorLabel)
	f.content = container.NewVBox(rows...)

	f.SetRecord(r)
	return f
}

// Container returns the form's canvas object.
func (f *CoilForm) Container() fyne.CanvasObject {
	return f.content
}

// SetRecord fills the inputs from r.
func (f *CoilForm) SetRecord(r coil.Record) {
	shape, err := coil.ParseShape(r.Shape)
	if err != nil {
		shape = coil.ShapeRound
	}
	for field, text := range RecordValues(r) {
		f.entries[field].SetText(text)
	}
	f.shapeSelect.SetSelected(shape.String())
	f.updateVisibility()
}

// Record parses the visible inputs. The result is not yet validated
// against the shape's constraints.
func (f *CoilForm) Record() (coil.Record, error) {
	return ParseRecord(f.shape(), f.values())
}

func (f *CoilForm) shape() coil.Shape {
	shape, err := coil.ParseShape(f.shapeSelect.Selected)
	if err != nil {
		return coil.ShapeRound
	}
	return shape
}

func (f *CoilForm) values() map[Field]string {
	values := make(map[Field]string, len(f.entries))
	for field, entry := range f.entries {
		values[field] = entry.Text
	}
	return values
}

func (f *CoilForm) updateVisibility() {
	visible := make(map[Field]bool)
	for _, field := range FieldsFor(f.shape()) {
		visible[field] = true
	}
	for field, row := range f.rows {
		if visible[field] {
			row.Show()
		} else {
			row.Hide()
		}
	}
	f.SetError(nil)
}

// SetError shows err under the form, or clears the message when nil.
func (f *CoilForm) SetError(err error) {
	if err == nil {
		f.errorLabel.SetText("")
		f.errorLabel.Hide()
		return
	}
	f.errorLabel.SetText(err.Error())
	f.errorLabel.Show()
}

func (f *CoilForm) submit() {
	r, err := f.Record()
	if err != nil {
		f.SetError(err)
		return
	}
	p, err := r.Params()
	if err != nil {
		f.SetError(err)
		return
	}
	f.SetError(nil)
	if f.onDraw != nil {
		f.onDraw(p)
	}
}
