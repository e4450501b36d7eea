// Package presets provides named coil parameter sets.
package presets

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"pcb-coil/internal/coil"
)

// Preset is a named, documented parameter set.
type Preset struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Params      coil.Record `json:"params"`
}

// Validate checks that the preset has a name and valid parameters.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if _, err := p.Params.Params(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}

// Coil returns the typed parameters of the preset.
func (p *Preset) Coil() (coil.Params, error) {
	return p.Params.Params()
}

// SaveToFile saves the preset to a JSON file.
func (p *Preset) SaveToFile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a preset from a JSON file.
func LoadFromFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}

	return &p, nil
}

// Registry of known presets
var registry = make(map[string]*Preset)

// Register adds a preset to the registry, replacing any preset of the same
// name.
func Register(p *Preset) {
	registry[p.Name] = p
}

// Get returns a preset by name, or nil.
func Get(name string) *Preset {
	if p, ok := registry[name]; ok {
		return p
	}
	return nil
}

// List returns all registered preset names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, p := range builtins() {
		Register(p)
	}
}
