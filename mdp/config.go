package mdp

import (
	"errors"
	"fmt"
)

const (
	DefaultGamma   = 1.0
	DefaultEpsilon = 1e-8

	// DefaultMaxSweeps and DefaultMaxRounds are safety caps so that a
	// malformed or non-contracting MDP surfaces as ErrNotConverged instead
	// of an infinite loop. Policy iteration on a well-formed finite MDP
	// stays far below both.
	DefaultMaxSweeps = 1_000_000
	DefaultMaxRounds = 1000

	// DefaultMaxEpisodeSteps bounds a single rollout episode.
	DefaultMaxEpisodeSteps = 1000
)

// ErrNotConverged is returned when an iteration cap is exhausted before the
// convergence criterion is met.
var ErrNotConverged = errors.New("did not converge")

// Config controls the solver. The zero value selects the defaults above:
// undiscounted returns (valid for episodic MDPs guaranteed to terminate),
// an evaluation threshold of 1e-8, and generous safety caps. A non-zero
// Gamma outside (0, 1] is rejected rather than silently replaced.
type Config struct {
	Gamma     float64 // discount factor in (0, 1]
	Epsilon   float64 // evaluation stops once max|v_new - v_old| < Epsilon
	MaxSweeps int     // evaluation sweeps before giving up
	MaxRounds int     // improvement rounds before giving up
}

func (c Config) withDefaults() (Config, error) {
	if c.Gamma == 0 {
		c.Gamma = DefaultGamma
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return Config{}, fmt.Errorf("discount factor %v outside (0, 1]", c.Gamma)
	}
	if c.Epsilon <= 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.MaxSweeps <= 0 {
		c.MaxSweeps = DefaultMaxSweeps
	}
	if c.MaxRounds <= 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	return c, nil
}
