// Package main provides the kanto binary that runs the numbered roster and
// game-state exercises and prints each result to stdout.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/kanto/internal/config"
	"github.com/cory-johannsen/kanto/internal/content"
	"github.com/cory-johannsen/kanto/internal/exercise"
	"github.com/cory-johannsen/kanto/internal/game/catalog"
	"github.com/cory-johannsen/kanto/internal/game/state"
	"github.com/cory-johannsen/kanto/internal/observability"
	"github.com/cory-johannsen/kanto/internal/render"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and environment")
	catalogPath := flag.String("catalog", "", "path to catalog YAML; overrides content.catalog")
	setupPath := flag.String("setup", "", "path to setup YAML; overrides content.setup")
	through := flag.Int("through", -1, "stop after this exercise number; overrides exercises.through")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *catalogPath != "" {
		cfg.Content.CatalogPath = *catalogPath
	}
	if *setupPath != "" {
		cfg.Content.SetupPath = *setupPath
	}
	if *through >= 0 {
		cfg.Exercises.Through = *through
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	cat, err := loadCatalog(cfg.Content.CatalogPath)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	setup, err := loadSetup(cfg.Content.SetupPath)
	if err != nil {
		logger.Fatal("loading setup", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("creatures", cat.Len()),
		zap.Int("gyms", len(setup.Gyms)),
		zap.Int("items", len(setup.Items)),
		zap.Bool("bundled_catalog", cfg.Content.CatalogPath == ""),
	)

	env := &exercise.Env{
		Catalog: cat,
		Game:    state.New(setup),
		Params:  paramsFromConfig(cfg.Exercises),
		Logger:  logger,
	}
	runner := exercise.NewRunner(exercise.DefaultRegistry(), render.New(os.Stdout), logger)
	if _, err := runner.Run(env, cfg.Exercises.Through); err != nil {
		logger.Fatal("running exercises", zap.Error(err))
	}

	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadFromBytes(content.Catalog)
	}
	return catalog.LoadFile(path)
}

func loadSetup(path string) (state.Setup, error) {
	if path == "" {
		return state.LoadSetupFromBytes(content.Setup)
	}
	return state.LoadSetupFile(path)
}

// paramsFromConfig converts validated exercise settings.
//
// Precondition: e passed config validation, so Thresholds has 3 entries and
// CatchIndexes has 2.
func paramsFromConfig(e config.ExerciseConfig) exercise.Params {
	p := exercise.Params{
		LookupIndex: e.LookupIndex,
		Difficulty:  e.Difficulty,
		Recruits:    e.Recruits,
		EvolveInto:  e.EvolveInto,
	}
	copy(p.Thresholds[:], e.Thresholds)
	copy(p.CatchIndexes[:], e.CatchIndexes)
	return p
}
