// Package state provides the mutable game aggregate: the recruited party,
// the gym challenges and the consumable item stock.
package state

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PokeballItem is the item consumed by Catch.
const PokeballItem = "pokeball"

// Gym is a location challenge. Difficulty is fixed at creation; only
// Completed changes.
type Gym struct {
	Location   string `yaml:"location"`
	Completed  bool   `yaml:"completed"`
	Difficulty int    `yaml:"difficulty"`
}

// Item is a named consumable with a non-negative quantity.
type Item struct {
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
}

// Setup is the initial layout a Game is created from.
type Setup struct {
	Gyms  []Gym  `yaml:"gyms"`
	Items []Item `yaml:"items"`
}

// Validate checks gym and item invariants.
//
// Postcondition: Returns nil iff every gym has a unique non-empty location and
// difficulty >= 1, and every item has a unique non-empty name and quantity >= 0.
func (s Setup) Validate() error {
	var errs []error
	locations := make(map[string]bool, len(s.Gyms))
	for i, g := range s.Gyms {
		if g.Location == "" {
			errs = append(errs, fmt.Errorf("gym %d: location must not be empty", i))
		} else if locations[g.Location] {
			errs = append(errs, fmt.Errorf("gym %d: duplicate location %q", i, g.Location))
		}
		locations[g.Location] = true
		if g.Difficulty < 1 {
			errs = append(errs, fmt.Errorf("gym %q: difficulty must be >= 1, got %d", g.Location, g.Difficulty))
		}
	}
	names := make(map[string]bool, len(s.Items))
	for i, it := range s.Items {
		if it.Name == "" {
			errs = append(errs, fmt.Errorf("item %d: name must not be empty", i))
		} else if names[it.Name] {
			errs = append(errs, fmt.Errorf("item %d: duplicate name %q", i, it.Name))
		}
		names[it.Name] = true
		if it.Quantity < 0 {
			errs = append(errs, fmt.Errorf("item %q: quantity must be >= 0, got %d", it.Name, it.Quantity))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("setup validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// LoadSetupFromBytes parses and validates a setup YAML document.
//
// Postcondition: Returns a valid Setup or an error.
func LoadSetupFromBytes(data []byte) (Setup, error) {
	var s Setup
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Setup{}, fmt.Errorf("state: parsing setup YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Setup{}, err
	}
	return s, nil
}

// LoadSetupFile reads and parses the setup at path.
func LoadSetupFile(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("state: reading %q: %w", path, err)
	}
	s, err := LoadSetupFromBytes(data)
	if err != nil {
		return Setup{}, fmt.Errorf("loading %q: %w", path, err)
	}
	return s, nil
}
