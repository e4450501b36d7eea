package render

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"pcb-coil/internal/coil"
	"pcb-coil/pkg/geometry"
)

func squarePath(t *testing.T) coil.Path {
	t.Helper()
	p, err := coil.NewSquare(3, 20, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	path, err := coil.Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func countColor(img *image.RGBA, c [4]uint8) int {
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == c[0] && img.Pix[i+1] == c[1] && img.Pix[i+2] == c[2] && img.Pix[i+3] == c[3] {
			n++
		}
	}
	return n
}

func TestPreviewDrawsTrace(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 200
	opts.ShowOrigin = false

	img := Preview([]coil.Path{squarePath(t)}, opts)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("got bounds %v", img.Bounds())
	}

	tr := opts.Trace
	if n := countColor(img, [4]uint8{tr.R, tr.G, tr.B, tr.A}); n < 200 {
		t.Errorf("got %d trace pixels, expected a visible spiral", n)
	}
	bg := opts.Background
	if c := img.RGBAAt(0, 0); c != bg {
		t.Errorf("got corner color %v, expected background %v", c, bg)
	}
}

func TestPreviewEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 10, 10
	img := Preview(nil, opts)
	bg := opts.Background
	if n := countColor(img, [4]uint8{bg.R, bg.G, bg.B, bg.A}); n != 100 {
		t.Errorf("got %d background pixels, expected 100", n)
	}
}

func TestTransformFixedScale(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 5
	tr := opts.Transform(nil)

	got := tr.Apply(geometry.Point2D{X: 15, Y: 0})
	want := geometry.Point2D{X: 300 + 75, Y: 300}
	if !got.AlmostEqual(want, 1e-9) {
		t.Errorf("got %+v, expected %+v", got, want)
	}
}

func TestTransformFit(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height, opts.Margin = 100, 100, 10
	path := coil.Path{Points: []geometry.Point2D{{X: -5, Y: -5}, {X: 5, Y: 5}}}

	tr := opts.Transform([]coil.Path{path})
	lo := tr.Apply(path.Points[0])
	hi := tr.Apply(path.Points[1])
	if math.Abs(lo.X-10) > 1e-9 || math.Abs(hi.X-90) > 1e-9 {
		t.Errorf("got fitted x range [%v, %v], expected [10, 90]", lo.X, hi.X)
	}
}

func TestEncodeFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("png decode: %v", err)
	}

	buf.Reset()
	if err := Encode(&buf, img, FormatTIFF); err != nil {
		t.Fatal(err)
	}
	got, err := tiff.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("tiff decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("got bounds %v, expected %v", got.Bounds(), img.Bounds())
	}
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	dir := t.TempDir()
	if err := SaveImage(filepath.Join(dir, "p.tif"), img); err != nil {
		t.Error(err)
	}
	if err := SaveImage(filepath.Join(dir, "p.bmp"), img); err == nil {
		t.Error("expected unsupported extension error")
	}
}
