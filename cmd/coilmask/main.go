// Command coilmask renders a coil as a 1:1 photomask bitmap for toner
// transfer or photoresist exposure.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"pcb-coil/internal/coil"
	"pcb-coil/internal/photomask"
	"pcb-coil/internal/presets"
	"pcb-coil/internal/project"
)

func main() {
	projectPath := flag.String("project", "", "Load parameters from a .coilproj file")
	presetName := flag.String("preset", "", "Use a built-in preset")
	output := flag.String("o", "", "Output image (PNG, TIFF or BMP)")
	dpi := flag.Float64("dpi", 1200, "Output resolution")
	margin := flag.Float64("margin", 2, "Blank border in mm")
	mirror := flag.Bool("mirror", false, "Mirror horizontally (toner transfer onto the top layer)")
	negative := flag.Bool("negative", false, "White traces on black (negative photoresist)")
	flag.Parse()

	if *output == "" || (*projectPath == "") == (*presetName == "") {
		fmt.Println("Usage: coilmask (-project <file.coilproj> | -preset <name>) -o <mask.png> [-dpi 1200] [-mirror] [-negative]")
		os.Exit(1)
	}

	var record coil.Record
	if *projectPath != "" {
		proj, err := project.Load(*projectPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load project: %v\n", err)
			os.Exit(1)
		}
		record = proj.Params
		if !flagSet("dpi") && proj.Settings.MaskDPI > 0 {
			*dpi = proj.Settings.MaskDPI
		}
	} else {
		p := presets.Get(*presetName)
		if p == nil {
			fmt.Fprintf(os.Stderr, "Unknown preset %q\n", *presetName)
			os.Exit(1)
		}
		record = p.Params
	}

	params, err := record.Params()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %v\n", err)
		os.Exit(1)
	}
	path, err := coil.Generate(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}

	opts := photomask.DefaultOptions()
	opts.DPI = *dpi
	opts.Margin = *margin
	opts.Mirror = *mirror
	opts.Negative = *negative
	opts.TraceWidth = record.TraceWidth

	layout, err := photomask.Plan([]coil.Path{path}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Layout failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Mask: %dx%d pixels at %.0f DPI, trace %d px\n", layout.Width, layout.Height, opts.DPI, layout.Thickness)

	if err := photomask.Save(*output, []coil.Path{path}, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", filepath.Clean(*output))
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
