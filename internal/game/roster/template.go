// Package roster provides combatant class templates loaded from YAML and
// their instantiation into live battle combatants.
package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arena/internal/game/battle"
)

// Template defines a reusable combatant class loaded from YAML.
type Template struct {
	// Class is the display label, e.g. "Ranger".
	Class string `yaml:"class"`
	// Health is the starting hit points.
	Health float64 `yaml:"health"`
	// Attack is the base attack stat.
	Attack float64 `yaml:"attack"`
	// Defence is the base defence stat.
	Defence float64 `yaml:"defence"`
	// Mode is the combat mode kind: "mostly_evasive", "random", "adaptive",
	// or "script".
	Mode string `yaml:"mode"`
	// Script is the Lua strategy script path, required when Mode is "script".
	Script string `yaml:"script"`
}

// ModeScript is the Mode value selecting a Lua-scripted combat mode.
const ModeScript = "script"

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff Class is non-empty, Health > 0, Attack > 0,
// Defence > 0, and Mode is a known kind with Script set when required;
// returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.Class == "" {
		return fmt.Errorf("roster template: class must not be empty")
	}
	if t.Health <= 0 {
		return fmt.Errorf("roster template %q: health must be > 0, got %v", t.Class, t.Health)
	}
	if t.Attack <= 0 {
		return fmt.Errorf("roster template %q: attack must be > 0, got %v", t.Class, t.Attack)
	}
	if t.Defence <= 0 {
		return fmt.Errorf("roster template %q: defence must be > 0, got %v", t.Class, t.Defence)
	}
	switch t.Mode {
	case battle.ModeMostlyEvasive, battle.ModeRandom, battle.ModeAdaptive:
	case ModeScript:
		if t.Script == "" {
			return fmt.Errorf("roster template %q: script path required when mode is %q", t.Class, ModeScript)
		}
	default:
		return fmt.Errorf("roster template %q: unknown mode %q", t.Class, t.Mode)
	}
	return nil
}

// NewCombatant instantiates a live combatant from this template with a fresh
// instance ID.
//
// Precondition: t must have passed Validate.
// Postcondition: Returns a combatant whose in-combat stats equal the base
// stats, or an error wrapping battle.ErrInvalidArgument.
func (t *Template) NewCombatant() (*battle.Combatant, error) {
	return battle.NewCombatant(uuid.New().String(), t.Class, t.Health, t.Attack, t.Defence)
}

// LoadTemplateFromBytes parses a single template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// templates keyed by class name.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first read, parse,
// validate, or duplicate-class failure; on error, the partial result is
// discarded.
func LoadTemplates(dir string) (map[string]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading roster dir %q: %w", dir, err)
	}

	templates := make(map[string]*Template)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		if _, exists := templates[tmpl.Class]; exists {
			return nil, fmt.Errorf("loading %q: duplicate class %q", path, tmpl.Class)
		}
		templates[tmpl.Class] = tmpl
	}
	return templates, nil
}
