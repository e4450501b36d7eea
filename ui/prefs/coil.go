package prefs

import "pcb-coil/internal/coil"

// Preference keys
const (
	KeyShape         = "coil.shape"
	KeyTurns         = "coil.turns"
	KeyDiameter      = "coil.diameter"
	KeyInnerRadius   = "coil.innerRadius"
	KeyOuterRadius   = "coil.outerRadius"
	KeyAngle         = "coil.angle"
	KeySpacing       = "coil.spacing"
	KeyTraceWidth    = "coil.traceWidth"
	KeyPreviewScale  = "preview.scale"
	KeyShowOrigin    = "preview.showOrigin"
	KeyTrueWidth     = "preview.trueWidth"
	KeyLastExportDir = "export.lastDirectory"
)

// LastRecord returns the parameters the form held when last saved. Unset
// fields are zero, so the result may not validate.
func (p *Prefs) LastRecord() coil.Record {
	return coil.Record{
		Shape:        p.String(KeyShape),
		Turns:        p.Float(KeyTurns),
		Diameter:     p.Float(KeyDiameter),
		InnerRadius:  p.Float(KeyInnerRadius),
		OuterRadius:  p.Float(KeyOuterRadius),
		AngleDegrees: p.Float(KeyAngle),
		Spacing:      p.Float(KeySpacing),
		TraceWidth:   p.Float(KeyTraceWidth),
	}
}

// SetLastRecord stores every field of r, including those the shape ignores,
// so switching shapes in the form keeps the other shapes' values.
func (p *Prefs) SetLastRecord(r coil.Record) {
	p.SetString(KeyShape, r.Shape)
	p.SetFloat(KeyTurns, r.Turns)
	p.SetFloat(KeyDiameter, r.Diameter)
	p.SetFloat(KeyInnerRadius, r.InnerRadius)
	p.SetFloat(KeyOuterRadius, r.OuterRadius)
	p.SetFloat(KeyAngle, r.AngleDegrees)
	p.SetFloat(KeySpacing, r.Spacing)
	p.SetFloat(KeyTraceWidth, r.TraceWidth)
}
