package dialogs

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pcb-coil/internal/coil"
)

func TestParseRecordSector(t *testing.T) {
	values := map[Field]string{
		FieldTurns:       "3",
		FieldInnerRadius: "5",
		FieldOuterRadius: " 20 ",
		FieldAngle:       "60",
		FieldSpacing:     "0.5",
		FieldTraceWidth:  "0.5",
		FieldDiameter:    "not used",
	}
	got, err := ParseRecord(coil.ShapeSector, values)
	if err != nil {
		t.Fatal(err)
	}
	want := coil.Record{
		Shape:        "sector",
		Turns:        3,
		InnerRadius:  5,
		OuterRadius:  20,
		AngleDegrees: 60,
		Spacing:      0.5,
		TraceWidth:   0.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRecord() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[Field]string
	}{
		{"missing", map[Field]string{FieldTurns: "3", FieldDiameter: "10", FieldSpacing: "1"}},
		{"not a number", map[Field]string{FieldTurns: "three", FieldDiameter: "10", FieldSpacing: "1", FieldTraceWidth: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecord(coil.ShapeRound, tt.values); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRecordValuesRoundTrip(t *testing.T) {
	want := coil.Record{Shape: "square", Turns: 4, Diameter: 15, Spacing: 0.2, TraceWidth: 0.35}
	got, err := ParseRecord(coil.ShapeSquare, RecordValues(want))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsFor(t *testing.T) {
	if got := len(FieldsFor(coil.ShapeSector)); got != 6 {
		t.Errorf("sector has %d fields, expected 6", got)
	}
	for _, s := range []coil.Shape{coil.ShapeRound, coil.ShapeSquare} {
		if got := len(FieldsFor(s)); got != 4 {
			t.Errorf("%v has %d fields, expected 4", s, got)
		}
	}
}
