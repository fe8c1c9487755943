package catalog

import "fmt"

// Catalog is an ordered, read-only sequence of Creatures.
type Catalog struct {
	creatures []Creature
	byName    map[string]int // name → position
}

// New builds a Catalog from creatures, preserving their order.
//
// Precondition: every creature passes Validate and names are unique.
// Postcondition: Returns a Catalog holding a private copy of creatures, or an
// error on the first invalid or duplicate record.
func New(creatures []Creature) (*Catalog, error) {
	c := &Catalog{
		creatures: make([]Creature, 0, len(creatures)),
		byName:    make(map[string]int, len(creatures)),
	}
	for i, cr := range creatures {
		if err := cr.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: record %d: %w", i, err)
		}
		if prev, exists := c.byName[cr.Name]; exists {
			return nil, fmt.Errorf("catalog: record %d: name %q already used by record %d", i, cr.Name, prev)
		}
		c.byName[cr.Name] = i
		c.creatures = append(c.creatures, cr)
	}
	return c, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.creatures)
}

// All returns a copy of every record in catalog order.
func (c *Catalog) All() []Creature {
	out := make([]Creature, len(c.creatures))
	copy(out, c.creatures)
	return out
}

// At returns the record at position i.
//
// Postcondition: ok is false iff i is out of range.
func (c *Catalog) At(i int) (Creature, bool) {
	if i < 0 || i >= len(c.creatures) {
		return Creature{}, false
	}
	return c.creatures[i], true
}

// Find returns the first record in catalog order for which pred is true.
func (c *Catalog) Find(pred func(Creature) bool) (Creature, bool) {
	for _, cr := range c.creatures {
		if pred(cr) {
			return cr, true
		}
	}
	return Creature{}, false
}

// ByName returns the record whose name matches exactly.
func (c *Catalog) ByName(name string) (Creature, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Creature{}, false
	}
	return c.creatures[i], true
}

// FirstStarter returns the first record flagged as a starter.
func (c *Catalog) FirstStarter() (Creature, bool) {
	return c.Find(func(cr Creature) bool { return cr.Starter })
}

// Filter returns every record for which pred is true, in catalog order.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (c *Catalog) Filter(pred func(Creature) bool) []Creature {
	out := []Creature{}
	for _, cr := range c.creatures {
		if pred(cr) {
			out = append(out, cr)
		}
	}
	return out
}

// Starters returns every starter record in catalog order.
func (c *Catalog) Starters() []Creature {
	return c.Filter(func(cr Creature) bool { return cr.Starter })
}

// FilterByNames returns the records whose name is in names. Results follow
// catalog order, not the order of names; unknown names are ignored.
func (c *Catalog) FilterByNames(names ...string) []Creature {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	return c.Filter(func(cr Creature) bool { return want[cr.Name] })
}

// Names projects creatures onto their names, preserving order.
func Names(creatures []Creature) []string {
	out := make([]string, len(creatures))
	for i, cr := range creatures {
		out[i] = cr.Name
	}
	return out
}
