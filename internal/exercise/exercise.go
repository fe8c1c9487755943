// Package exercise defines the numbered exercises run against the catalog
// and game state, and the runner that executes them in order.
package exercise

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/kanto/internal/game/catalog"
	"github.com/cory-johannsen/kanto/internal/game/state"
)

// Params are the constants the built-in exercises operate with.
type Params struct {
	LookupIndex  int
	Difficulty   string
	Recruits     []string
	Thresholds   [3]int
	EvolveInto   string
	CatchIndexes [2]int
}

// DefaultParams returns the classic Kanto walkthrough constants.
func DefaultParams() Params {
	return Params{
		LookupIndex:  58,
		Difficulty:   "Advanced",
		Recruits:     []string{"Charizard", "Venusaur", "Jolteon"},
		Thresholds:   [3]int{3, 6, 8},
		EvolveInto:   "Wartortle",
		CatchIndexes: [2]int{93, 122},
	}
}

// Env is the shared state every exercise reads and mutates.
type Env struct {
	Catalog *catalog.Catalog
	Game    *state.Game
	Params  Params
	Logger  *zap.Logger
}

// Exercise is one numbered step. Run returns the value to print.
type Exercise struct {
	Number int
	Name   string
	Run    func(env *Env) (any, error)
}

// Registry holds exercises ordered by number.
type Registry struct {
	exercises []*Exercise
	byNumber  map[int]*Exercise
}

// NewRegistry creates a Registry from exs.
//
// Precondition: numbers are unique and >= 1; every Run is non-nil.
// Postcondition: Returns a Registry ordered by number, or an error.
func NewRegistry(exs []Exercise) (*Registry, error) {
	r := &Registry{byNumber: make(map[int]*Exercise, len(exs))}
	for i := range exs {
		ex := &exs[i]
		if ex.Number < 1 {
			return nil, fmt.Errorf("exercise %q: number must be >= 1, got %d", ex.Name, ex.Number)
		}
		if ex.Run == nil {
			return nil, fmt.Errorf("exercise %d: run must not be nil", ex.Number)
		}
		if existing, exists := r.byNumber[ex.Number]; exists {
			return nil, fmt.Errorf("duplicate exercise number %d: %q and %q", ex.Number, existing.Name, ex.Name)
		}
		r.byNumber[ex.Number] = ex
		r.exercises = append(r.exercises, ex)
	}
	sort.Slice(r.exercises, func(i, j int) bool {
		return r.exercises[i].Number < r.exercises[j].Number
	})
	return r, nil
}

// DefaultRegistry creates a Registry with all built-in exercises.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Builtin())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Get returns the exercise with the given number.
func (r *Registry) Get(number int) (*Exercise, bool) {
	ex, ok := r.byNumber[number]
	return ex, ok
}

// Exercises returns all exercises in number order.
func (r *Registry) Exercises() []*Exercise {
	out := make([]*Exercise, len(r.exercises))
	copy(out, r.exercises)
	return out
}
