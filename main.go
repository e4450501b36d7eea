// Package main provides the entry point for the PCB Coil application.
package main

import (
	"log"
	"os"

	"pcb-coil/internal/app"
	"pcb-coil/internal/version"
	"pcb-coil/ui/mainwindow"
	"pcb-coil/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appID = "io.github.pcbcoil"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String("pcb-coil"))

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.CoilTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Handle command line arguments
	if len(os.Args) > 1 {
		projectPath := os.Args[1]
		if err := appState.LoadProject(projectPath); err != nil {
			log.Printf("Failed to load project %s: %v", projectPath, err)
		} else if _, err := appState.Generate(); err != nil {
			log.Printf("Failed to generate %s: %v", projectPath, err)
		}
	}

	win.ShowAndRun()
}
