// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"

	"pcb-coil/internal/app"
	"pcb-coil/internal/coil"
	"pcb-coil/internal/export"
	"pcb-coil/internal/photomask"
	"pcb-coil/internal/presets"
	"pcb-coil/internal/project"
	"pcb-coil/internal/render"
	"pcb-coil/internal/version"
	"pcb-coil/ui/canvas"
	"pcb-coil/ui/dialogs"
	"pcb-coil/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "PCB Coil"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.CoilCanvas
	form      *dialogs.CoilForm
	statusBar *widget.Label

	// Menu items that need state tracking
	fitToWindowItem *fyne.MenuItem
	showOriginItem  *fyne.MenuItem
	trueWidthItem   *fyne.MenuItem
	showOrigin      bool
	trueWidth       bool
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window:     win,
		app:        fyneApp,
		state:      state,
		prefs:      p,
		showOrigin: p.Bool(prefs.KeyShowOrigin, true),
		trueWidth:  p.Bool(prefs.KeyTrueWidth, true),
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreLastParams()

	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		win.Close()
	})
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewCoilCanvas()
	mw.canvas.SetShowOrigin(mw.showOrigin)
	if scale := mw.prefs.Float(prefs.KeyPreviewScale); scale > 0 {
		mw.canvas.SetZoom(scale)
	}

	mw.form = dialogs.NewCoilForm(mw.prefs.LastRecord(), mw.onDraw)
	mw.statusBar = widget.NewLabel("Ready")

	modeSelect := widget.NewSelect([]string{app.ModeCenterline.String(), app.ModeRings.String()}, func(name string) {
		mode, err := app.ParseMode(name)
		if err != nil {
			return
		}
		mw.state.SetMode(mode)
		if mw.state.Params() != nil {
			mw.state.Generate()
		}
	})
	modeSelect.SetSelected(mw.state.Mode().String())

	presetSelect := widget.NewSelect(presets.List(), mw.onSelectPreset)
	presetSelect.PlaceHolder = "Presets"

	side := container.NewVBox(
		presetSelect,
		widget.NewSeparator(),
		mw.form.Container(),
		widget.NewSeparator(),
		container.NewGridWithColumns(2, widget.NewLabel("Output"), modeSelect),
	)

	canvasArea := container.NewBorder(
		mw.createToolbar(), // top
		nil,                // bottom
		nil,                // left
		nil,                // right
		mw.canvas,          // center
	)

	split := container.NewHSplit(container.NewVScroll(side), canvasArea)
	split.SetOffset(0.3)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1100, 750))
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		widget.NewButton("-", mw.onZoomOut),
		widget.NewButton("+", mw.onZoomIn),
		widget.NewButton("Fit", func() { mw.setFitToWindow(true) }),
		widget.NewButton("1:1", mw.onActualSize),
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", mw.onNewProject),
		fyne.NewMenuItem("Open Project...", mw.onOpenProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Project", mw.onSaveProject),
		fyne.NewMenuItem("Save Project As...", mw.onSaveProjectAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save DXF...", mw.onSaveDXF),
		fyne.NewMenuItem("Export SVG...", mw.onExportSVG),
		fyne.NewMenuItem("Export Preview Image...", mw.onExportImage),
		fyne.NewMenuItem("Export Photomask...", mw.onExportMask),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mw.SavePreferences()
			mw.app.Quit()
		}),
	)

	mw.fitToWindowItem = fyne.NewMenuItem("Fit to Window", func() { mw.setFitToWindow(!mw.canvas.GetFitToWindow()) })
	mw.fitToWindowItem.Checked = mw.canvas.GetFitToWindow()
	mw.showOriginItem = fyne.NewMenuItem("Show Origin", mw.onToggleOrigin)
	mw.showOriginItem.Checked = mw.showOrigin
	mw.trueWidthItem = fyne.NewMenuItem("True Trace Width", mw.onToggleTrueWidth)
	mw.trueWidthItem.Checked = mw.trueWidth

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		mw.fitToWindowItem,
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
		fyne.NewMenuItemSeparator(),
		mw.showOriginItem,
		mw.trueWidthItem,
	)

	presetItems := make([]*fyne.MenuItem, 0, len(presets.List()))
	for _, name := range presets.List() {
		name := name
		presetItems = append(presetItems, fyne.NewMenuItem(name, func() { mw.onSelectPreset(name) }))
	}
	presetMenu := fyne.NewMenu("Presets", presetItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, presetMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProjectLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle(appTitle + " - " + filepath.Base(path))
			mw.updateStatus("Project loaded: " + path)
		}
	})

	mw.state.On(app.EventProjectSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle(appTitle + " - " + filepath.Base(path))
			mw.updateStatus("Project saved: " + path)
		}
	})

	mw.state.On(app.EventParamsChanged, func(data interface{}) {
		p, ok := data.(coil.Params)
		if !ok {
			return
		}
		mw.form.SetRecord(coil.RecordOf(p))
		mw.applyTraceWidth()
	})

	mw.state.On(app.EventPathGenerated, func(data interface{}) {
		paths, ok := data.([]coil.Path)
		if !ok {
			return
		}
		mw.canvas.SetPaths(paths)
		mw.form.SetError(nil)
		mw.updateStatus(summary(paths))
	})

	mw.state.On(app.EventGenerateFailed, func(data interface{}) {
		if err, ok := data.(error); ok {
			mw.canvas.SetPaths(nil)
			mw.form.SetError(err)
			mw.updateStatus("Generation failed")
		}
	})

	mw.state.On(app.EventExported, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Exported " + path)
		}
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		title := mw.Title()
		modified, _ := data.(bool)
		switch {
		case modified && (len(title) == 0 || title[len(title)-1] != '*'):
			mw.SetTitle(title + " *")
		case !modified && len(title) > 2 && title[len(title)-2:] == " *":
			mw.SetTitle(title[:len(title)-2])
		}
	})
}

// summary describes generated paths for the status bar.
func summary(paths []coil.Path) string {
	points, length := 0, 0.0
	for _, p := range paths {
		points += p.Len()
		length += p.Length()
	}
	b := coil.PathsBounds(paths)
	return fmt.Sprintf("%d points, trace length %.1f mm, extent %.1f x %.1f mm", points, length, b.Width, b.Height)
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// restoreLastParams draws the coil the form held when the app last closed.
func (mw *MainWindow) restoreLastParams() {
	p, err := mw.prefs.LastRecord().Params()
	if err != nil {
		return
	}
	mw.state.SetParams(p)
	mw.state.Generate()
	mw.state.SetModified(false) // Don't mark as modified on restore
}

// SavePreferences stores the form and view settings.
func (mw *MainWindow) SavePreferences() {
	if r, err := mw.form.Record(); err == nil {
		mw.prefs.SetLastRecord(r)
	}
	if !mw.canvas.GetFitToWindow() {
		mw.prefs.SetFloat(prefs.KeyPreviewScale, mw.canvas.GetZoom())
	} else {
		mw.prefs.SetFloat(prefs.KeyPreviewScale, 0)
	}
	mw.prefs.SetBool(prefs.KeyShowOrigin, mw.showOrigin)
	mw.prefs.SetBool(prefs.KeyTrueWidth, mw.trueWidth)
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastExportDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastExportDir, filepath.Dir(filePath))
}

func (mw *MainWindow) applyTraceWidth() {
	if !mw.trueWidth {
		mw.canvas.SetTraceWidth(0)
		return
	}
	if p := mw.state.Params(); p != nil {
		mw.canvas.SetTraceWidth(coil.RecordOf(p).TraceWidth)
	}
}

// Actions

func (mw *MainWindow) onDraw(p coil.Params) {
	mw.state.SetParams(p)
	mw.state.Generate()
}

func (mw *MainWindow) onSelectPreset(name string) {
	preset := presets.Get(name)
	if preset == nil {
		return
	}
	p, err := preset.Coil()
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.state.ApplyPreset(name, p)
	mw.state.Generate()
	mw.updateStatus(fmt.Sprintf("Preset %s: %s", name, preset.Description))
}

func (mw *MainWindow) onNewProject() {
	mw.state.NewProject()
	mw.SetTitle(appTitle + " - New Project")
}

func (mw *MainWindow) onOpenProject() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.state.Generate()
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{project.Extension}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveProject() {
	path, _ := mw.state.ProjectFile()
	if path == "" {
		mw.onSaveProjectAs()
		return
	}
	if err := mw.state.SaveProject(path); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveProjectAs() {
	mw.saveFile("coil"+project.Extension, project.Extension, func(path string) error {
		return mw.state.SaveProject(path)
	})
}

func (mw *MainWindow) onSaveDXF() {
	name := "coil.dxf"
	if target := mw.state.DXFTarget(); target != "" {
		name = filepath.Base(target)
	}
	mw.exportPaths(name, ".dxf", func(path string, _ coil.Params, paths []coil.Path) error {
		opts := export.DefaultDXFOptions()
		if _, proj := mw.state.ProjectFile(); proj != nil && proj.Settings.DXFLayer != "" {
			opts.Layer = proj.Settings.DXFLayer
		}
		return export.WriteDXF(path, paths, opts)
	})
}

func (mw *MainWindow) onExportSVG() {
	mw.exportPaths("coil.svg", ".svg", func(path string, p coil.Params, paths []coil.Path) error {
		opts := export.DefaultSVGOptions()
		opts.StrokeWidth = coil.RecordOf(p).TraceWidth
		return export.SaveSVG(path, paths, opts)
	})
}

func (mw *MainWindow) onExportImage() {
	mw.exportPaths("coil.png", ".png", func(path string, p coil.Params, paths []coil.Path) error {
		opts := render.DefaultOptions()
		opts.Width, opts.Height = 1200, 1200
		opts.TraceWidth = coil.RecordOf(p).TraceWidth
		return render.SaveImage(path, render.Preview(paths, opts))
	})
}

func (mw *MainWindow) onExportMask() {
	opts := photomask.DefaultOptions()
	if _, proj := mw.state.ProjectFile(); proj != nil {
		if proj.Settings.MaskDPI > 0 {
			opts.DPI = proj.Settings.MaskDPI
		}
		opts.Mirror = proj.Settings.MaskMirror
	}
	dialogs.NewMaskDialog(opts, mw.Window, func(opts photomask.Options) {
		mw.exportPaths("coil-mask.png", ".png", func(path string, p coil.Params, paths []coil.Path) error {
			opts.TraceWidth = coil.RecordOf(p).TraceWidth
			return photomask.Save(path, paths, opts)
		})
	}).Show()
}

// exportPaths regenerates the coil from the form as it reads now, asks for
// a file name and writes the fresh geometry with write.
func (mw *MainWindow) exportPaths(defaultName, ext string, write func(path string, p coil.Params, paths []coil.Path) error) {
	r, err := mw.form.Record()
	if err != nil {
		mw.form.SetError(err)
		dialog.ShowError(err, mw.Window)
		return
	}
	p, paths, err := app.BuildRecord(r, mw.state.Mode())
	if err != nil {
		mw.form.SetError(err)
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.form.SetError(nil)
	mw.saveFile(defaultName, ext, func(path string) error {
		if err := write(path, p, paths); err != nil {
			return err
		}
		mw.state.RecordExport(path)
		return nil
	})
}

// saveFile shows a save dialog and calls save with the chosen path, adding
// ext when missing.
func (mw *MainWindow) saveFile(defaultName, ext string, save func(path string) error) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) == "" {
			path += ext
		}
		mw.saveLastDir(path)
		if err := save(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName(defaultName)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onZoomIn() {
	mw.disableFitToWindow()
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.disableFitToWindow()
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onActualSize() {
	mw.disableFitToWindow()
	mw.canvas.SetZoom(screenPixelsPerMM)
}

// screenPixelsPerMM approximates a 96 DPI display.
const screenPixelsPerMM = 96 / 25.4

func (mw *MainWindow) setFitToWindow(enabled bool) {
	mw.canvas.SetFitToWindow(enabled)
	mw.fitToWindowItem.Checked = enabled
	mw.MainMenu().Refresh()
}

func (mw *MainWindow) disableFitToWindow() {
	if mw.canvas.GetFitToWindow() {
		mw.setFitToWindow(false)
	}
}

func (mw *MainWindow) onToggleOrigin() {
	mw.showOrigin = !mw.showOrigin
	mw.showOriginItem.Checked = mw.showOrigin
	mw.canvas.SetShowOrigin(mw.showOrigin)
	mw.MainMenu().Refresh()
}

func (mw *MainWindow) onToggleTrueWidth() {
	mw.trueWidth = !mw.trueWidth
	mw.trueWidthItem.Checked = mw.trueWidth
	mw.applyTraceWidth()
	mw.MainMenu().Refresh()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Planar PCB inductor coil generator.\n\n"+
			"Round, square and sector spirals with DXF, SVG\n"+
			"and photomask export.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
