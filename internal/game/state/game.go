package state

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/kanto/internal/game/catalog"
)

// Member is one party slot. InstanceID distinguishes two recruitments of the
// same creature.
type Member struct {
	InstanceID       string `yaml:"instance_id"`
	catalog.Creature `yaml:",inline"`
}

func newMember(c catalog.Creature) Member {
	return Member{InstanceID: uuid.New().String(), Creature: c}
}

// Tally counts gyms by completion.
type Tally struct {
	Completed  int `yaml:"completed"`
	Incomplete int `yaml:"incomplete"`
}

// Snapshot is a plain copy of the whole aggregate, suitable for rendering.
type Snapshot struct {
	Party      []Member `yaml:"party"`
	Gyms       []Gym    `yaml:"gyms"`
	Items      []Item   `yaml:"items"`
	Difficulty string   `yaml:"difficulty,omitempty"`
}

// Game is the single mutable aggregate. It is not safe for concurrent use.
type Game struct {
	party      []Member
	gyms       []Gym
	items      []Item
	difficulty string
}

// New creates a Game from setup with an empty party.
//
// Precondition: setup should pass Validate.
// Postcondition: the Game holds private copies of setup's gyms and items.
func New(setup Setup) *Game {
	g := &Game{
		party: []Member{},
		gyms:  make([]Gym, len(setup.Gyms)),
		items: make([]Item, len(setup.Items)),
	}
	copy(g.gyms, setup.Gyms)
	copy(g.items, setup.Items)
	return g
}

// SetDifficulty assigns the overall difficulty label.
func (g *Game) SetDifficulty(label string) {
	g.difficulty = label
}

// Difficulty returns the overall difficulty label.
func (g *Game) Difficulty() string {
	return g.difficulty
}

// RecruitStarter appends the first starter in cat to the party.
//
// Postcondition: ok is false and the party is unchanged when cat has no starter.
func (g *Game) RecruitStarter(cat *catalog.Catalog) (Member, bool) {
	c, ok := cat.FirstStarter()
	if !ok {
		return Member{}, false
	}
	m := newMember(c)
	g.party = append(g.party, m)
	return m, true
}

// RecruitNamed appends every record of cat whose name is in names, in catalog
// order, and returns the appended members.
func (g *Game) RecruitNamed(cat *catalog.Catalog, names ...string) []Member {
	matches := cat.FilterByNames(names...)
	added := make([]Member, 0, len(matches))
	for _, c := range matches {
		m := newMember(c)
		g.party = append(g.party, m)
		added = append(added, m)
	}
	return added
}

// CompleteGymsBelow marks every gym with difficulty strictly less than
// threshold as completed and returns how many changed.
//
// Postcondition: gyms at or above threshold are untouched.
func (g *Game) CompleteGymsBelow(threshold int) int {
	changed := 0
	for i := range g.gyms {
		if g.gyms[i].Difficulty < threshold && !g.gyms[i].Completed {
			g.gyms[i].Completed = true
			changed++
		}
	}
	return changed
}

// EvolveStarter replaces the first starter in the party with the catalog
// record named into, keeping its position.
//
// Postcondition: ok is false and the party is unchanged when no party member is
// a starter or into is not in cat.
func (g *Game) EvolveStarter(cat *catalog.Catalog, into string) (Member, bool) {
	idx := -1
	for i, m := range g.party {
		if m.Starter {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Member{}, false
	}
	evolved, ok := cat.ByName(into)
	if !ok {
		return Member{}, false
	}
	m := newMember(evolved)
	g.party[idx] = m
	return m, true
}

// Catch appends c to the party, consuming one pokeball.
//
// Postcondition: returns false and leaves party and items unchanged when there
// is no pokeball item or its quantity is zero.
func (g *Game) Catch(c catalog.Creature) bool {
	ball := g.itemIndex(PokeballItem)
	if ball == -1 || g.items[ball].Quantity <= 0 {
		return false
	}
	g.party = append(g.party, newMember(c))
	g.items[ball].Quantity--
	return true
}

// GymStatus tallies gyms by completion.
//
// Postcondition: Completed + Incomplete == len(Gyms()).
func (g *Game) GymStatus() Tally {
	var t Tally
	for _, gym := range g.gyms {
		if gym.Completed {
			t.Completed++
		} else {
			t.Incomplete++
		}
	}
	return t
}

// PartyCount returns the party size.
func (g *Game) PartyCount() int {
	return len(g.party)
}

// PartyNames returns the party's creature names in party order.
func (g *Game) PartyNames() []string {
	out := make([]string, len(g.party))
	for i, m := range g.party {
		out[i] = m.Name
	}
	return out
}

// Party returns a copy of the party.
func (g *Game) Party() []Member {
	out := make([]Member, len(g.party))
	copy(out, g.party)
	return out
}

// Gyms returns a copy of the gyms.
func (g *Game) Gyms() []Gym {
	out := make([]Gym, len(g.gyms))
	copy(out, g.gyms)
	return out
}

// Items returns a copy of the items.
func (g *Game) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Item returns the item with the given name.
func (g *Game) Item(name string) (Item, bool) {
	i := g.itemIndex(name)
	if i == -1 {
		return Item{}, false
	}
	return g.items[i], true
}

// Snapshot returns a copy of the whole aggregate.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Party:      g.Party(),
		Gyms:       g.Gyms(),
		Items:      g.Items(),
		Difficulty: g.difficulty,
	}
}

func (g *Game) itemIndex(name string) int {
	for i := range g.items {
		if g.items[i].Name == name {
			return i
		}
	}
	return -1
}
