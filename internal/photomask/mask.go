package photomask

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"pcb-coil/internal/coil"
)

var (
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Render draws the paths into a single-channel mask. The caller owns the
// returned Mat and must Close it.
func Render(paths []coil.Path, opts Options) (gocv.Mat, error) {
	layout, err := Plan(paths, opts)
	if err != nil {
		return gocv.NewMat(), err
	}

	bg, fg := 255.0, black
	if opts.Negative {
		bg, fg = 0, white
	}
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(bg, bg, bg, 0), layout.Height, layout.Width, gocv.MatTypeCV8U)

	for i, pts := range layout.Polylines {
		pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
		gocv.Polylines(&mask, pv, layout.Closed[i], fg, layout.Thickness)
		pv.Close()
	}

	if !opts.Mirror {
		return mask, nil
	}
	mirrored := gocv.NewMat()
	gocv.Flip(mask, &mirrored, 1)
	mask.Close()
	return mirrored, nil
}

// Save renders the paths and writes the mask to filename. The format is
// chosen by OpenCV from the extension.
func Save(filename string, paths []coil.Path, opts Options) error {
	mask, err := Render(paths, opts)
	if err != nil {
		return err
	}
	defer mask.Close()

	if !gocv.IMWrite(filename, mask) {
		return fmt.Errorf("photomask: failed to write %s", filename)
	}
	return nil
}
