// Command coilgen generates a planar coil and exports it as DXF, SVG or a
// preview image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pcb-coil/internal/app"
	"pcb-coil/internal/coil"
	"pcb-coil/internal/export"
	"pcb-coil/internal/presets"
	"pcb-coil/internal/project"
	"pcb-coil/internal/render"
	"pcb-coil/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "coilgen: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("coilgen", flag.ContinueOnError)

	var r coil.Record
	fs.StringVar(&r.Shape, "shape", "round", "Coil shape: round, square or sector")
	fs.Float64Var(&r.Turns, "turns", 10, "Number of turns (whole for square and sector)")
	fs.Float64Var(&r.Diameter, "diameter", 10, "Starting diameter or square side in mm")
	fs.Float64Var(&r.InnerRadius, "inner", 5, "Sector inner radius in mm")
	fs.Float64Var(&r.OuterRadius, "outer", 20, "Sector outer radius in mm")
	fs.Float64Var(&r.AngleDegrees, "angle", 60, "Sector angle in degrees")
	fs.Float64Var(&r.Spacing, "spacing", 0.3, "Gap between adjacent traces in mm")
	fs.Float64Var(&r.TraceWidth, "width", 0.5, "Trace width in mm")

	presetName := fs.String("preset", "", "Use a built-in preset instead of shape flags")
	presetFile := fs.String("preset-file", "", "Use a preset saved as JSON instead of shape flags")
	savePreset := fs.String("save-preset", "", "Save the parameters as a preset JSON file")
	projectPath := fs.String("project", "", "Load parameters from a .coilproj file")
	listPresets := fs.Bool("list", false, "List built-in presets and exit")
	modeName := fs.String("mode", "centerline", "Output: centerline or rings")
	samplesPerTurn := fs.Int("samples-per-turn", 0, "Round spiral samples per turn (0 = fixed 1000 total)")

	dxfPath := fs.String("dxf", "", "Write DXF to this file")
	layer := fs.String("layer", "COIL", "DXF layer name")
	svgPath := fs.String("svg", "", "Write SVG to this file")
	imgPath := fs.String("png", "", "Write a preview image (.png or .tif) to this file")
	size := fs.Int("size", 800, "Preview image size in pixels")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String("coilgen"))
		return nil
	}
	if *listPresets {
		for _, name := range presets.List() {
			fmt.Fprintf(stdout, "%-12s %s\n", name, presets.Get(name).Description)
		}
		return nil
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch {
	case *projectPath != "":
		proj, err := project.Load(*projectPath)
		if err != nil {
			return err
		}
		r = proj.Params
		if proj.Preset != "" {
			fmt.Fprintf(stdout, "Project %s (from preset %s)\n", proj.Name, proj.Preset)
		}
		if !set["layer"] && proj.Settings.DXFLayer != "" {
			*layer = proj.Settings.DXFLayer
		}
		if !set["mode"] && proj.Settings.RingsMode {
			*modeName = app.ModeRings.String()
		}
		if *dxfPath == "" && *svgPath == "" && *imgPath == "" {
			*dxfPath = proj.GetExportPath(*projectPath)
		}
	case *presetFile != "":
		p, err := presets.LoadFromFile(*presetFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Preset %s: %s\n", p.Name, p.Description)
		r = p.Params
	case *presetName != "":
		p := presets.Get(*presetName)
		if p == nil {
			return fmt.Errorf("unknown preset %q (see -list)", *presetName)
		}
		r = p.Params
	}

	params, err := r.Params()
	if err != nil {
		return err
	}
	mode, err := app.ParseMode(*modeName)
	if err != nil {
		return err
	}

	res := coil.DefaultResolution()
	if rp, ok := params.(coil.RoundParams); ok && *samplesPerTurn > 0 {
		res = res.WithRoundSamplesPerTurn(*samplesPerTurn, rp.Turns)
	}
	paths, err := generate(params, mode, res)
	if err != nil {
		return err
	}

	points, length := 0, 0.0
	for _, p := range paths {
		points += p.Len()
		length += p.Length()
	}
	bounds := coil.PathsBounds(paths)
	traceWidth := coil.RecordOf(params).TraceWidth
	fmt.Fprintf(stdout, "%s coil: %d path(s), %d points\n", params.Shape(), len(paths), points)
	fmt.Fprintf(stdout, "Trace length: %.2f mm\n", length)
	fmt.Fprintf(stdout, "Extent: %.2f x %.2f mm\n", bounds.Width, bounds.Height)

	if *savePreset != "" {
		p := &presets.Preset{
			Name:        strings.TrimSuffix(filepath.Base(*savePreset), filepath.Ext(*savePreset)),
			Description: fmt.Sprintf("%s coil, %g turns", params.Shape(), coil.RecordOf(params).Turns),
			Params:      coil.RecordOf(params),
		}
		if err := p.SaveToFile(*savePreset); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *savePreset)
	}

	if *dxfPath != "" {
		opts := export.DefaultDXFOptions()
		opts.Layer = *layer
		if err := export.WriteDXF(*dxfPath, paths, opts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *dxfPath)
	}

	if *svgPath != "" {
		if err := saveSVG(*svgPath, paths, traceWidth); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *svgPath)
	}

	if *imgPath != "" {
		opts := render.DefaultOptions()
		opts.Width, opts.Height = *size, *size
		opts.TraceWidth = traceWidth
		if err := render.SaveImage(*imgPath, render.Preview(paths, opts)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *imgPath)
	}
	return nil
}

func generate(p coil.Params, mode app.Mode, res coil.Resolution) ([]coil.Path, error) {
	if mode == app.ModeRings {
		return coil.RingsWith(p, res)
	}
	path, err := coil.GenerateWith(p, res)
	if err != nil {
		return nil, err
	}
	return []coil.Path{path}, nil
}

func saveSVG(path string, paths []coil.Path, traceWidth float64) error {
	opts := export.DefaultSVGOptions()
	opts.StrokeWidth = traceWidth
	return export.SaveSVG(path, paths, opts)
}
