// Package project provides project file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pcb-coil/internal/coil"
)

// Extension is the project file extension.
const Extension = ".coilproj"

// CurrentVersion is the file format version written by Save.
const CurrentVersion = 1

// File represents a coil project file (.coilproj).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	// Coil parameters
	Params coil.Record `json:"params"`
	Preset string      `json:"preset,omitempty"` // preset the params started from

	// Export target (relative to project file)
	ExportPath string `json:"export,omitempty"`

	// User settings
	Settings ProjectSettings `json:"settings,omitempty"`
}

// ProjectSettings holds output preferences for the project.
type ProjectSettings struct {
	DXFLayer   string  `json:"dxf_layer,omitempty"`
	MaskDPI    float64 `json:"mask_dpi,omitempty"`
	MaskMirror bool    `json:"mask_mirror"`
	RingsMode  bool    `json:"rings_mode"`
}

// New creates a new project file with default settings.
func New(name string, params coil.Params) *File {
	now := time.Now()
	return &File{
		Version:  CurrentVersion,
		Name:     name,
		Created:  now,
		Modified: now,
		Params:   coil.RecordOf(params),
		Settings: ProjectSettings{
			DXFLayer: "COIL",
			MaskDPI:  1200,
		},
	}
}

// Load loads a project from a .coilproj file and validates its parameters.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if proj.Version > CurrentVersion {
		return nil, fmt.Errorf("project version %d is newer than supported version %d", proj.Version, CurrentVersion)
	}
	if _, err := proj.Params.Params(); err != nil {
		return nil, fmt.Errorf("project %s: %w", filepath.Base(path), err)
	}

	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()
	if p.Version == 0 {
		p.Version = CurrentVersion
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Coil returns the typed parameters stored in the project.
func (p *File) Coil() (coil.Params, error) {
	return p.Params.Params()
}

// SetParams replaces the stored parameters.
func (p *File) SetParams(params coil.Params) {
	p.Params = coil.RecordOf(params)
	p.Modified = time.Now()
}

// SetExportPath sets the export path (relative to project).
func (p *File) SetExportPath(projectPath, exportPath string) {
	rel, err := filepath.Rel(filepath.Dir(projectPath), exportPath)
	if err != nil {
		p.ExportPath = exportPath
	} else {
		p.ExportPath = rel
	}
	p.Modified = time.Now()
}

// GetExportPath returns the absolute export path.
func (p *File) GetExportPath(projectPath string) string {
	if p.ExportPath == "" {
		// Default: project_name.dxf
		return strings.TrimSuffix(projectPath, filepath.Ext(projectPath)) + ".dxf"
	}
	if filepath.IsAbs(p.ExportPath) {
		return p.ExportPath
	}
	return filepath.Join(filepath.Dir(projectPath), p.ExportPath)
}
