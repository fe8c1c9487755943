package exercise

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/kanto/internal/game/catalog"
)

// Lookup is the result of the indexed catalog lookup.
type Lookup struct {
	Catalog []catalog.Creature `yaml:"catalog"`
	Index   int                `yaml:"index"`
	Name    string             `yaml:"name,omitempty"`
	Found   bool               `yaml:"found"`
}

// Builtin returns the sixteen walkthrough exercises.
func Builtin() []Exercise {
	return []Exercise{
		{Number: 1, Name: "catalog lookup", Run: lookupByIndex},
		{Number: 2, Name: "initial game", Run: snapshot},
		{Number: 3, Name: "set difficulty", Run: setDifficulty},
		{Number: 4, Name: "recruit starter", Run: recruitStarter},
		{Number: 5, Name: "recruit named", Run: recruitNamed},
		{Number: 6, Name: "complete early gyms", Run: completeGyms(0)},
		{Number: 7, Name: "evolve starter", Run: evolveStarter},
		{Number: 8, Name: "party names", Run: partyNames},
		{Number: 9, Name: "starter names", Run: starterNames},
		{Number: 10, Name: "catch", Run: catchAt(0)},
		{Number: 11, Name: "catch with pokeball", Run: catchAt(1)},
		{Number: 12, Name: "complete middle gyms", Run: completeGyms(1)},
		{Number: 13, Name: "gym status", Run: gymStatus},
		{Number: 14, Name: "party count", Run: partyCount},
		{Number: 15, Name: "complete late gyms", Run: completeGyms(2)},
		{Number: 16, Name: "final game", Run: snapshot},
	}
}

func lookupByIndex(env *Env) (any, error) {
	l := Lookup{Catalog: env.Catalog.All(), Index: env.Params.LookupIndex}
	c, ok := env.Catalog.At(env.Params.LookupIndex)
	if !ok {
		env.Logger.Warn("no creature at index", zap.Int("index", l.Index), zap.Int("catalog_size", env.Catalog.Len()))
		return l, nil
	}
	l.Name, l.Found = c.Name, true
	return l, nil
}

func snapshot(env *Env) (any, error) {
	return env.Game.Snapshot(), nil
}

func setDifficulty(env *Env) (any, error) {
	env.Game.SetDifficulty(env.Params.Difficulty)
	return env.Game.Snapshot(), nil
}

func recruitStarter(env *Env) (any, error) {
	m, ok := env.Game.RecruitStarter(env.Catalog)
	if !ok {
		env.Logger.Warn("catalog has no starter; party unchanged")
	} else {
		env.Logger.Debug("recruited starter", zap.String("name", m.Name), zap.String("instance_id", m.InstanceID))
	}
	return env.Game.Party(), nil
}

func recruitNamed(env *Env) (any, error) {
	added := env.Game.RecruitNamed(env.Catalog, env.Params.Recruits...)
	if len(added) < len(env.Params.Recruits) {
		env.Logger.Warn("some recruits not found in catalog",
			zap.Strings("wanted", env.Params.Recruits),
			zap.Int("found", len(added)),
		)
	}
	return env.Game.Party(), nil
}

func completeGyms(i int) func(*Env) (any, error) {
	return func(env *Env) (any, error) {
		threshold := env.Params.Thresholds[i]
		changed := env.Game.CompleteGymsBelow(threshold)
		env.Logger.Debug("completed gyms", zap.Int("threshold", threshold), zap.Int("changed", changed))
		return env.Game.Gyms(), nil
	}
}

func evolveStarter(env *Env) (any, error) {
	m, ok := env.Game.EvolveStarter(env.Catalog, env.Params.EvolveInto)
	if !ok {
		env.Logger.Warn("starter not evolved; party unchanged", zap.String("into", env.Params.EvolveInto))
	} else {
		env.Logger.Debug("evolved starter", zap.String("into", m.Name))
	}
	return env.Game.Party(), nil
}

func partyNames(env *Env) (any, error) {
	return env.Game.PartyNames(), nil
}

func starterNames(env *Env) (any, error) {
	return catalog.Names(env.Catalog.Starters()), nil
}

// catchAt catches the creature at the i-th configured catch index. Exercise
// 10 prints the party and exercise 11 the items.
func catchAt(i int) func(*Env) (any, error) {
	return func(env *Env) (any, error) {
		idx := env.Params.CatchIndexes[i]
		c, ok := env.Catalog.At(idx)
		switch {
		case !ok:
			env.Logger.Warn("no creature at index", zap.Int("index", idx))
		case !env.Game.Catch(c):
			env.Logger.Info("catch failed: no pokeballs left", zap.String("name", c.Name))
		default:
			env.Logger.Debug("caught", zap.String("name", c.Name))
		}
		if i == 0 {
			return env.Game.Party(), nil
		}
		return env.Game.Items(), nil
	}
}

func gymStatus(env *Env) (any, error) {
	return env.Game.GymStatus(), nil
}

func partyCount(env *Env) (any, error) {
	return env.Game.PartyCount(), nil
}
