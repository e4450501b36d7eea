// Package app provides application state, events and theming.
package app

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"pcb-coil/internal/coil"
	"pcb-coil/internal/project"
)

// Mode selects what is generated from the parameters.
type Mode int

const (
	ModeCenterline Mode = iota // single spiral path
	ModeRings                  // concentric ring outlines
)

func (m Mode) String() string {
	switch m {
	case ModeCenterline:
		return "centerline"
	case ModeRings:
		return "rings"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "centerline", "spiral":
		return ModeCenterline, nil
	case "rings":
		return ModeRings, nil
	}
	return 0, fmt.Errorf("unknown mode %q (use centerline or rings)", name)
}

// State holds the current parameters, the last generated geometry and the
// open project.
type State struct {
	mu sync.RWMutex

	// Project
	ProjectPath string
	Project     *project.File
	Modified    bool

	// Coil
	params coil.Params
	preset string // preset the params came from, if any
	mode   Mode
	paths  []coil.Path

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventProjectLoaded EventType = iota
	EventProjectSaved
	EventParamsChanged
	EventPathGenerated
	EventGenerateFailed
	EventExported
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the project as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// Params returns the current parameters, or nil if none are set.
func (s *State) Params() coil.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Mode returns the current generation mode.
func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Paths returns the last generated geometry.
func (s *State) Paths() []coil.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paths
}

// ProjectFile returns the open project and its path. The project is nil
// when none is open.
func (s *State) ProjectFile() (string, *project.File) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ProjectPath, s.Project
}

// Preset returns the name of the preset the current parameters came from,
// or "" if they were entered by hand.
func (s *State) Preset() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preset
}

// SetParams stores new parameters, clears the previous geometry and emits
// EventParamsChanged. Parameters set this way are not tied to a preset.
func (s *State) SetParams(p coil.Params) {
	s.setParams(p, "")
}

// ApplyPreset is SetParams for parameters taken from the named preset.
func (s *State) ApplyPreset(name string, p coil.Params) {
	s.setParams(p, name)
}

func (s *State) setParams(p coil.Params, preset string) {
	s.mu.Lock()
	s.params = p
	s.preset = preset
	s.paths = nil
	s.Modified = true
	s.mu.Unlock()
	s.Emit(EventParamsChanged, p)
	s.Emit(EventModified, true)
}

// SetMode changes the generation mode and clears the previous geometry.
func (s *State) SetMode(m Mode) {
	s.mu.Lock()
	changed := s.mode != m
	s.mode = m
	if changed {
		s.paths = nil
	}
	s.mu.Unlock()
}

// Generate builds geometry for the current parameters and mode. On success
// it emits EventPathGenerated with the paths, otherwise EventGenerateFailed
// with the error.
func (s *State) Generate() ([]coil.Path, error) {
	s.mu.RLock()
	p, mode := s.params, s.mode
	s.mu.RUnlock()

	paths, err := Build(p, mode)
	if err != nil {
		log.Printf("Generate %v: %v", mode, err)
		s.Emit(EventGenerateFailed, err)
		return nil, err
	}

	s.mu.Lock()
	s.paths = paths
	s.mu.Unlock()
	s.Emit(EventPathGenerated, paths)
	return paths, nil
}

// Build generates geometry for p in the given mode.
func Build(p coil.Params, mode Mode) ([]coil.Path, error) {
	if p == nil {
		return nil, fmt.Errorf("no coil parameters set")
	}
	switch mode {
	case ModeRings:
		return coil.Rings(p)
	default:
		path, err := coil.Generate(p)
		if err != nil {
			return nil, err
		}
		return []coil.Path{path}, nil
	}
}

// BuildRecord converts r to typed parameters and generates geometry for
// them in the given mode. Nothing is stored in any State.
func BuildRecord(r coil.Record, mode Mode) (coil.Params, []coil.Path, error) {
	p, err := r.Params()
	if err != nil {
		return nil, nil, err
	}
	paths, err := Build(p, mode)
	if err != nil {
		return nil, nil, err
	}
	return p, paths, nil
}

// DXFTarget returns the DXF file the open project exports to, or "" when
// no saved project is open.
func (s *State) DXFTarget() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Project == nil || s.ProjectPath == "" {
		return ""
	}
	return s.Project.GetExportPath(s.ProjectPath)
}

// RecordExport notes a written file and emits EventExported. A DXF written
// while a saved project is open becomes the project's export target.
func (s *State) RecordExport(path string) {
	s.mu.Lock()
	changed := false
	if s.Project != nil && s.ProjectPath != "" && strings.EqualFold(filepath.Ext(path), ".dxf") &&
		s.Project.GetExportPath(s.ProjectPath) != path {
		s.Project.SetExportPath(s.ProjectPath, path)
		s.Modified = true
		changed = true
	}
	s.mu.Unlock()

	s.Emit(EventExported, path)
	if changed {
		s.Emit(EventModified, true)
	}
}

// LoadProject loads a project and makes its parameters current.
func (s *State) LoadProject(path string) error {
	proj, err := project.Load(path)
	if err != nil {
		return err
	}
	params, err := proj.Coil()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Project = proj
	s.params = params
	s.preset = proj.Preset
	s.paths = nil
	s.mode = ModeCenterline
	if proj.Settings.RingsMode {
		s.mode = ModeRings
	}
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventProjectLoaded, path)
	s.Emit(EventParamsChanged, params)
	return nil
}

// SaveProject saves the current parameters to path.
func (s *State) SaveProject(path string) error {
	s.mu.Lock()
	if s.params == nil {
		s.mu.Unlock()
		return fmt.Errorf("no coil parameters set")
	}
	if s.Project == nil {
		s.Project = project.New(projectName(path), s.params)
	}
	s.Project.SetParams(s.params)
	s.Project.Preset = s.preset
	s.Project.Settings.RingsMode = s.mode == ModeRings
	proj := s.Project
	s.mu.Unlock()

	if err := proj.Save(path); err != nil {
		return err
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventProjectSaved, path)
	s.Emit(EventModified, false)
	return nil
}

// NewProject discards the open project, keeping the current parameters.
func (s *State) NewProject() {
	s.mu.Lock()
	s.ProjectPath = ""
	s.Project = nil
	s.Modified = false
	s.mu.Unlock()
	s.Emit(EventModified, false)
}

// projectName derives a project name from its file name.
func projectName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
