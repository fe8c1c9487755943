// Package config provides Viper-based configuration loading for kanto.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ExerciseCount is the number of numbered exercises in a full run.
const ExerciseCount = 16

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig names the content files to load. Empty paths select the
// bundled content.
type ContentConfig struct {
	CatalogPath string `mapstructure:"catalog"`
	SetupPath   string `mapstructure:"setup"`
}

// ExerciseConfig holds the constants the numbered exercises operate with.
type ExerciseConfig struct {
	// LookupIndex is the catalog position printed by exercise 1.
	LookupIndex int `mapstructure:"lookup_index"`
	// Difficulty is the overall label assigned by exercise 3.
	Difficulty string `mapstructure:"difficulty"`
	// Recruits are the names recruited by exercise 5.
	Recruits []string `mapstructure:"recruits"`
	// Thresholds are the gym difficulty cutoffs of exercises 6, 12 and 15.
	Thresholds []int `mapstructure:"thresholds"`
	// EvolveInto is the catalog name the starter becomes in exercise 7.
	EvolveInto string `mapstructure:"evolve_into"`
	// CatchIndexes are the catalog positions caught by exercises 10 and 11.
	CatchIndexes []int `mapstructure:"catch_indexes"`
	// Through stops the run after this exercise number; 0 runs all.
	Through int `mapstructure:"through"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig  `mapstructure:"logging"`
	Content   ContentConfig  `mapstructure:"content"`
	Exercises ExerciseConfig `mapstructure:"exercises"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateExercises(c.Exercises); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateExercises(e ExerciseConfig) error {
	var errs []string
	if e.LookupIndex < 0 {
		errs = append(errs, fmt.Sprintf("exercises.lookup_index must be >= 0, got %d", e.LookupIndex))
	}
	if e.Difficulty == "" {
		errs = append(errs, "exercises.difficulty must not be empty")
	}
	for i, name := range e.Recruits {
		if name == "" {
			errs = append(errs, fmt.Sprintf("exercises.recruits[%d] must not be empty", i))
		}
	}
	if len(e.Thresholds) != 3 {
		errs = append(errs, fmt.Sprintf("exercises.thresholds must have 3 entries, got %d", len(e.Thresholds)))
	}
	if e.EvolveInto == "" {
		errs = append(errs, "exercises.evolve_into must not be empty")
	}
	if len(e.CatchIndexes) != 2 {
		errs = append(errs, fmt.Sprintf("exercises.catch_indexes must have 2 entries, got %d", len(e.CatchIndexes)))
	}
	for i, idx := range e.CatchIndexes {
		if idx < 0 {
			errs = append(errs, fmt.Sprintf("exercises.catch_indexes[%d] must be >= 0, got %d", i, idx))
		}
	}
	if e.Through < 0 || e.Through > ExerciseCount {
		errs = append(errs, fmt.Sprintf("exercises.through must be 0-%d, got %d", ExerciseCount, e.Through))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with KANTO_ prefix
	v.SetEnvPrefix("KANTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.catalog", "")
	v.SetDefault("content.setup", "")

	v.SetDefault("exercises.lookup_index", 58)
	v.SetDefault("exercises.difficulty", "Advanced")
	v.SetDefault("exercises.recruits", []string{"Charizard", "Venusaur", "Jolteon"})
	v.SetDefault("exercises.thresholds", []int{3, 6, 8})
	v.SetDefault("exercises.evolve_into", "Wartortle")
	v.SetDefault("exercises.catch_indexes", []int{93, 122})
	v.SetDefault("exercises.through", 0)
}
