package presets

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pcb-coil/internal/coil"
)

func TestBuiltinsGenerate(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() not sorted: %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p := Get(name)
			if p == nil {
				t.Fatalf("Get(%q) = nil", name)
			}
			if err := p.Validate(); err != nil {
				t.Fatal(err)
			}
			params, err := p.Coil()
			if err != nil {
				t.Fatal(err)
			}
			path, err := coil.Generate(params)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if path.Len() < 2 {
				t.Errorf("got %d points", path.Len())
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	if p := Get("no-such-coil"); p != nil {
		t.Errorf("got %+v, expected nil", p)
	}
}

func TestSaveLoad(t *testing.T) {
	want := Get("sector-60")
	path := filepath.Join(t.TempDir(), "sector.json")
	if err := want.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadFromFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"no name", Preset{Params: Get("round-20").Params}},
		{"bad shape", Preset{Name: "x", Params: coil.Record{Shape: "hex", Turns: 1}}},
		{"fractional square", Preset{Name: "x", Params: coil.Record{Shape: "square", Turns: 1.5, Diameter: 10, TraceWidth: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.preset.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
