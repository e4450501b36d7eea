package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"pcb-coil/internal/coil"
)

func sectorPath(t *testing.T) coil.Path {
	t.Helper()
	p, err := coil.NewSector(2, 10, 20, 90, 0.2, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	path, err := coil.Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWriteSVG(t *testing.T) {
	path := sectorPath(t)

	var buf bytes.Buffer
	opts := DefaultSVGOptions()
	opts.StrokeWidth = 0.2
	if err := WriteSVG(&buf, []coil.Path{path}, opts); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("malformed document:\n%s", out)
	}
	if n := strings.Count(out, "<path "); n != 1 {
		t.Errorf("got %d path elements, expected 1", n)
	}
	if !strings.Contains(out, " Z'") {
		t.Error("closed sector path not terminated with Z")
	}
	// Closing point is implied by Z, so one L per remaining vertex.
	if got, want := strings.Count(out, "\n  L"), path.Len()-2; got != want {
		t.Errorf("got %d line segments, expected %d", got, want)
	}
	if !strings.Contains(out, "stroke-width: 0.2") {
		t.Error("stroke width missing")
	}
}

func TestPathsViewBox(t *testing.T) {
	sq, _ := coil.NewSquare(1, 30, 0.2, 0.2)
	path, err := coil.Generate(sq)
	if err != nil {
		t.Fatal(err)
	}
	r := pathsViewBox([]coil.Path{path}, 1)
	if math.Abs(r.Min.X+1.4) > 1e-9 || math.Abs(r.Max.X-16) > 1e-9 {
		t.Errorf("got x range [%v, %v], expected [-1.4, 16]", r.Min.X, r.Max.X)
	}
}

func TestWriteSVGNoPaths(t *testing.T) {
	if err := WriteSVG(&bytes.Buffer{}, nil, DefaultSVGOptions()); err == nil {
		t.Error("expected error for empty input")
	}
}

// dxfEntity holds the group values of one ENTITIES section entry.
type dxfEntity struct {
	kind   string
	groups map[int][]string
}

// readEntities splits an ASCII DXF file into code/value pairs and returns
// the entities found in the ENTITIES section.
func readEntities(t *testing.T, name string) []dxfEntity {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var entities []dxfEntity
	inEntities := false
	for i := 0; i+1 < len(lines); i += 2 {
		code, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			t.Fatalf("line %d: bad group code %q", i+1, lines[i])
		}
		value := strings.TrimSpace(lines[i+1])
		switch {
		case code == 2 && value == "ENTITIES":
			inEntities = true
		case code == 0 && value == "ENDSEC":
			inEntities = false
		case code == 0 && inEntities:
			entities = append(entities, dxfEntity{kind: value, groups: map[int][]string{}})
		case inEntities && len(entities) > 0:
			e := entities[len(entities)-1]
			e.groups[code] = append(e.groups[code], value)
		}
	}
	return entities
}

func (e dxfEntity) intGroup(t *testing.T, code int) int {
	t.Helper()
	if len(e.groups[code]) != 1 {
		t.Fatalf("%s: got %d values for group %d", e.kind, len(e.groups[code]), code)
	}
	n, err := strconv.Atoi(e.groups[code][0])
	if err != nil {
		t.Fatalf("%s: group %d: %v", e.kind, code, err)
	}
	return n
}

func (e dxfEntity) floatGroup(t *testing.T, code int) float64 {
	t.Helper()
	if len(e.groups[code]) != 1 {
		t.Fatalf("%s: got %d values for group %d", e.kind, len(e.groups[code]), code)
	}
	f, err := strconv.ParseFloat(e.groups[code][0], 64)
	if err != nil {
		t.Fatalf("%s: group %d: %v", e.kind, code, err)
	}
	return f
}

func TestWriteDXF(t *testing.T) {
	name := filepath.Join(t.TempDir(), "coil.dxf")

	round, _ := coil.NewRound(3, 20, 0.3, 0.3)
	open, err := coil.Generate(round)
	if err != nil {
		t.Fatal(err)
	}
	sector, _ := coil.NewSector(1, 10, 20, 90, 0.2, 0.2)
	closed, err := coil.Generate(sector)
	if err != nil {
		t.Fatal(err)
	}
	if closed.Len() != 201 {
		t.Fatalf("got %d sector points, expected 201", closed.Len())
	}

	if err := WriteDXF(name, []coil.Path{open, closed}, DefaultDXFOptions()); err != nil {
		t.Fatal(err)
	}

	entities := readEntities(t, name)
	if len(entities) != 2 {
		t.Fatalf("got %d entities, expected 2", len(entities))
	}
	tests := []struct {
		name     string
		closed   int
		vertices int
	}{
		{"round spiral", 0, 1000},
		{"sector", 1, 200},
	}
	for i, tc := range tests {
		e := entities[i]
		if e.kind != "LWPOLYLINE" {
			t.Errorf("%s: got %s entity, expected LWPOLYLINE", tc.name, e.kind)
			continue
		}
		if got := e.intGroup(t, 70); got != tc.closed {
			t.Errorf("%s: got closed flag %d, expected %d", tc.name, got, tc.closed)
		}
		if got := e.intGroup(t, 90); got != tc.vertices {
			t.Errorf("%s: got vertex count %d, expected %d", tc.name, got, tc.vertices)
		}
		if got := len(e.groups[10]); got != tc.vertices {
			t.Errorf("%s: got %d x coordinates, expected %d", tc.name, got, tc.vertices)
		}
		if layer := e.groups[8]; len(layer) != 1 || layer[0] != "COIL" {
			t.Errorf("%s: got layer %v, expected COIL", tc.name, layer)
		}
	}

	// The closing point of the sector is implied by the flag.
	xs := entities[1].groups[10]
	if xs[0] == xs[len(xs)-1] && entities[1].groups[20][0] == entities[1].groups[20][len(xs)-1] {
		t.Error("closed polyline repeats its first vertex")
	}
}

func TestWriteDXFCircleRings(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rings.dxf")

	round, _ := coil.NewRound(2, 10, 0.5, 0.5)
	rings, err := coil.Rings(round)
	if err != nil {
		t.Fatal(err)
	}
	square, _ := coil.NewSquare(1, 4, 0.5, 0.5)
	squares, err := coil.Rings(square)
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteDXF(name, append(rings, squares...), DefaultDXFOptions()); err != nil {
		t.Fatal(err)
	}

	entities := readEntities(t, name)
	if len(entities) != 6 {
		t.Fatalf("got %d entities, expected 6", len(entities))
	}
	radii := []float64{5, 4.5, 6, 5.5}
	for i, r := range radii {
		e := entities[i]
		if e.kind != "CIRCLE" {
			t.Errorf("ring %d: got %s entity, expected CIRCLE", i, e.kind)
			continue
		}
		if got := e.floatGroup(t, 40); math.Abs(got-r) > 1e-9 {
			t.Errorf("ring %d: got radius %v, expected %v", i, got, r)
		}
		if x, y := e.floatGroup(t, 10), e.floatGroup(t, 20); x != 0 || y != 0 {
			t.Errorf("ring %d: got center (%v, %v), expected the origin", i, x, y)
		}
	}
	for i, e := range entities[4:] {
		if e.kind != "LWPOLYLINE" || e.intGroup(t, 70) != 1 || e.intGroup(t, 90) != 4 {
			t.Errorf("square ring %d: got %s closed=%v vertices=%v", i, e.kind, e.groups[70], e.groups[90])
		}
	}
}

func TestWriteDXFBadDirectory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "coil.dxf")
	if err := WriteDXF(name, []coil.Path{sectorPath(t)}, DefaultDXFOptions()); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
