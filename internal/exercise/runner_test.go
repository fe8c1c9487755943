package exercise_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/kanto/internal/content"
	"github.com/cory-johannsen/kanto/internal/exercise"
	"github.com/cory-johannsen/kanto/internal/game/catalog"
	"github.com/cory-johannsen/kanto/internal/game/state"
)

type recorder struct {
	results map[int]any
	order   []int
	failAt  int
}

func (r *recorder) Result(number int, v any) error {
	if number == r.failAt {
		return errors.New("write failed")
	}
	if r.results == nil {
		r.results = make(map[int]any)
	}
	r.results[number] = v
	r.order = append(r.order, number)
	return nil
}

func newEnv(t *testing.T, cat *catalog.Catalog, logger *zap.Logger) *exercise.Env {
	t.Helper()
	setup, err := state.LoadSetupFromBytes(content.Setup)
	require.NoError(t, err)
	if cat == nil {
		cat, err = catalog.LoadFromBytes(content.Catalog)
		require.NoError(t, err)
	}
	return &exercise.Env{
		Catalog: cat,
		Game:    state.New(setup),
		Params:  exercise.DefaultParams(),
		Logger:  logger,
	}
}

func names(members []state.Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func TestRun_FullWalkthrough(t *testing.T) {
	env := newEnv(t, nil, zap.NewNop())
	rec := &recorder{}
	ran, err := exercise.NewRunner(exercise.DefaultRegistry(), rec, zap.NewNop()).Run(env, 0)
	require.NoError(t, err)
	assert.Equal(t, 16, ran)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, rec.order)

	lookup := rec.results[1].(exercise.Lookup)
	assert.True(t, lookup.Found)
	assert.Equal(t, "Arcanine", lookup.Name)
	assert.Len(t, lookup.Catalog, 151)

	assert.Empty(t, rec.results[2].(state.Snapshot).Party)
	assert.Equal(t, "Advanced", rec.results[3].(state.Snapshot).Difficulty)
	assert.Equal(t, []string{"Bulbasaur"}, names(rec.results[4].([]state.Member)))
	assert.Equal(t, []string{"Bulbasaur", "Venusaur", "Charizard", "Jolteon"}, names(rec.results[5].([]state.Member)))
	assert.Equal(t, []string{"Wartortle", "Venusaur", "Charizard", "Jolteon"}, names(rec.results[7].([]state.Member)))
	assert.Equal(t, []string{"Wartortle", "Venusaur", "Charizard", "Jolteon"}, rec.results[8])
	assert.Equal(t, []string{"Bulbasaur", "Charmander", "Squirtle", "Pikachu"}, rec.results[9])
	assert.Equal(t, []string{"Wartortle", "Venusaur", "Charizard", "Jolteon", "Gengar"}, names(rec.results[10].([]state.Member)))

	items := rec.results[11].([]state.Item)
	assert.Equal(t, state.Item{Name: "pokeball", Quantity: 6}, items[1])

	assert.Equal(t, state.Tally{Completed: 5, Incomplete: 3}, rec.results[13])
	assert.Equal(t, 6, rec.results[14])

	final := rec.results[16].(state.Snapshot)
	assert.Equal(t, []string{"Wartortle", "Venusaur", "Charizard", "Jolteon", "Gengar", "Scyther"}, names(final.Party))
	assert.Equal(t, state.Tally{Completed: 7, Incomplete: 1}, env.Game.GymStatus())
}

func TestRun_GymsFromExerciseSix(t *testing.T) {
	env := newEnv(t, nil, zap.NewNop())
	rec := &recorder{}
	_, err := exercise.NewRunner(exercise.DefaultRegistry(), rec, zap.NewNop()).Run(env, 6)
	require.NoError(t, err)

	gyms := rec.results[6].([]state.Gym)
	for _, g := range gyms {
		assert.Equal(t, g.Difficulty < 3, g.Completed, "gym %s", g.Location)
	}
}

func TestRun_Through(t *testing.T) {
	env := newEnv(t, nil, zap.NewNop())
	rec := &recorder{}
	ran, err := exercise.NewRunner(exercise.DefaultRegistry(), rec, zap.NewNop()).Run(env, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, ran)
	assert.Equal(t, 4, env.Game.PartyCount())
}

func TestRun_MissedLookupsAreLoggedNotFatal(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	cat, err := catalog.New([]catalog.Creature{{Number: 132, Name: "Ditto", Type: "normal", HP: 48}})
	require.NoError(t, err)
	env := newEnv(t, cat, logger)

	rec := &recorder{}
	ran, err := exercise.NewRunner(exercise.DefaultRegistry(), rec, logger).Run(env, 0)
	require.NoError(t, err)
	assert.Equal(t, 16, ran)
	assert.Equal(t, 0, env.Game.PartyCount())
	assert.False(t, rec.results[1].(exercise.Lookup).Found)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel)
	assert.NotZero(t, warnings.FilterMessage("catalog has no starter; party unchanged").Len())
	assert.NotZero(t, warnings.FilterMessage("no creature at index").Len())
	assert.Equal(t, 1, logs.FilterMessage("exercises complete").Len())
}

func TestRun_PokeballsExhausted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	env := newEnv(t, nil, logger)
	env.Game = state.New(state.Setup{Items: []state.Item{{Name: state.PokeballItem, Quantity: 1}}})

	rec := &recorder{}
	_, err := exercise.NewRunner(exercise.DefaultRegistry(), rec, logger).Run(env, 11)
	require.NoError(t, err)
	assert.Equal(t, []state.Item{{Name: state.PokeballItem, Quantity: 0}}, rec.results[11])
	assert.Equal(t, 1, logs.FilterMessage("catch failed: no pokeballs left").Len())
}

func TestRun_PrintErrorStops(t *testing.T) {
	env := newEnv(t, nil, zap.NewNop())
	rec := &recorder{failAt: 3}
	ran, err := exercise.NewRunner(exercise.DefaultRegistry(), rec, zap.NewNop()).Run(env, 0)
	require.Error(t, err)
	assert.Equal(t, 2, ran)
	assert.Contains(t, err.Error(), "printing exercise 3")
}

func TestRun_ExerciseErrorStops(t *testing.T) {
	reg, err := exercise.NewRegistry([]exercise.Exercise{
		{Number: 1, Name: "ok", Run: func(*exercise.Env) (any, error) { return "fine", nil }},
		{Number: 2, Name: "broken", Run: func(*exercise.Env) (any, error) { return nil, errors.New("boom") }},
	})
	require.NoError(t, err)
	env := newEnv(t, nil, zap.NewNop())

	ran, err := exercise.NewRunner(reg, &recorder{}, zap.NewNop()).Run(env, 0)
	require.Error(t, err)
	assert.Equal(t, 1, ran)
	assert.Contains(t, err.Error(), "exercise 2 (broken): boom")
}
