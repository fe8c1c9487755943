package exercise

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Printer receives each exercise result.
type Printer interface {
	Result(number int, v any) error
}

// Runner executes a Registry's exercises in order against one Env.
type Runner struct {
	reg    *Registry
	out    Printer
	logger *zap.Logger
}

// NewRunner creates a Runner.
//
// Precondition: reg, out and logger must be non-nil.
func NewRunner(reg *Registry, out Printer, logger *zap.Logger) *Runner {
	return &Runner{reg: reg, out: out, logger: logger}
}

// Run executes every exercise numbered <= through (0 means all) and prints
// each result. Lookups that miss do not stop the run; an exercise or print
// error does.
//
// Precondition: env.Catalog, env.Game and env.Logger must be non-nil.
// Postcondition: Returns the number of exercises run and the first error.
func (r *Runner) Run(env *Env, through int) (int, error) {
	start := time.Now()
	ran := 0
	for _, ex := range r.reg.Exercises() {
		if through > 0 && ex.Number > through {
			break
		}
		r.logger.Debug("running exercise", zap.Int("number", ex.Number), zap.String("name", ex.Name))
		v, err := ex.Run(env)
		if err != nil {
			return ran, fmt.Errorf("exercise %d (%s): %w", ex.Number, ex.Name, err)
		}
		if err := r.out.Result(ex.Number, v); err != nil {
			return ran, fmt.Errorf("printing exercise %d: %w", ex.Number, err)
		}
		ran++
	}
	r.logger.Info("exercises complete",
		zap.Int("ran", ran),
		zap.Int("party", env.Game.PartyCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return ran, nil
}
