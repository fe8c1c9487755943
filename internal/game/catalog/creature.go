// Package catalog provides the read-only creature roster and its lookups.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Creature is a single roster record. Records are values and never mutated
// after loading.
type Creature struct {
	Number  int    `yaml:"number"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	HP      int    `yaml:"hp"`
	Starter bool   `yaml:"starter"`
}

// Validate checks that the Creature satisfies its invariants.
//
// Postcondition: returns nil iff Name is non-empty, Number >= 1 and HP >= 1.
func (c Creature) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.Number < 1 {
		errs = append(errs, fmt.Errorf("number must be >= 1, got %d", c.Number))
	}
	if c.HP < 1 {
		errs = append(errs, fmt.Errorf("hp must be >= 1, got %d", c.HP))
	}
	if len(errs) > 0 {
		return fmt.Errorf("creature %q: %w", c.Name, errors.Join(errs...))
	}
	return nil
}

type catalogFile struct {
	Pokemon []Creature `yaml:"pokemon"`
}

// LoadFromBytes parses a catalog YAML document and validates every record.
//
// Precondition: data must be a YAML mapping with a top-level "pokemon" list.
// Postcondition: Returns a Catalog preserving document order, or an error.
func LoadFromBytes(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parsing YAML: %w", err)
	}
	return New(f.Pokemon)
}

// LoadFile reads and parses the catalog at path.
//
// Precondition: path must name a readable catalog YAML file.
// Postcondition: Returns a Catalog or an error naming the path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %q: %w", path, err)
	}
	cat, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return cat, nil
}
