package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"pcb-coil/internal/coil"
)

func sectorParams(t *testing.T) coil.Params {
	t.Helper()
	p, err := coil.NewSector(3, 5, 20, 60, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stator"+Extension)

	want := New("stator", sectorParams(t))
	want.Description = "12 slot stator phase A"
	want.SetExportPath(path, filepath.Join(dir, "out", "stator.dxf"))
	if err := want.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	opt := cmpopts.EquateApproxTime(time.Millisecond)
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	params, err := got.Coil()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sectorParams(t), params); diff != "" {
		t.Errorf("Coil() mismatch (-want +got):\n%s", diff)
	}
	if p := got.GetExportPath(path); p != filepath.Join(dir, "out", "stator.dxf") {
		t.Errorf("got export path %q", p)
	}
}

func TestDefaultExportPath(t *testing.T) {
	f := New("x", sectorParams(t))
	if got := f.GetExportPath("/tmp/coils/x.coilproj"); got != "/tmp/coils/x.dxf" {
		t.Errorf("got %q, expected /tmp/coils/x.dxf", got)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"version":`},
		{"newer version", `{"version": 99, "params": {"shape": "round", "turns": 1, "diameter_mm": 10, "trace_width_mm": 1}}`},
		{"invalid params", `{"version": 1, "params": {"shape": "round", "turns": -1, "diameter_mm": 10, "trace_width_mm": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "p"+Extension)
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
