package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solution is the output of policy iteration: the converged deterministic
// policy, the value function and action values of its final evaluation, and
// iteration diagnostics.
type Solution struct {
	Policy *mat.Dense
	V      *mat.VecDense
	Q      *mat.Dense
	Rounds int // improvement rounds until the policy was stable
	Sweeps int // evaluation sweeps summed over all rounds
}

// Solve runs exact policy iteration on the model: starting from the uniform
// policy, evaluate it, derive action values, act greedily, and repeat until
// the greedy policy reproduces itself exactly. Each round builds a fresh
// policy and rebinds, so no round aliases the previous one's storage.
//
// On a finite MDP the greedy step never lowers any state's value and the
// policy space is finite, so the loop terminates; MaxRounds only guards
// against malformed models.
func Solve(m *Model, cfg Config) (Solution, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Solution{}, err
	}
	policy := UniformPolicy(m.S, m.A)

	sol := Solution{}
	for round := 1; round <= cfg.MaxRounds; round++ {
		v, sweeps, err := EvaluatePolicy(m, policy, cfg)
		if err != nil {
			return Solution{}, fmt.Errorf("improvement round %d: %w", round, err)
		}
		sol.Sweeps += sweeps

		q := QFromV(m, v, cfg.Gamma)
		improved := GreedyPolicy(q)
		if mat.Equal(policy, improved) {
			sol.Policy = improved
			sol.V = v
			sol.Q = q
			sol.Rounds = round
			return sol, nil
		}
		policy = improved
	}
	return Solution{}, fmt.Errorf("policy iteration after %d rounds: %w", cfg.MaxRounds, ErrNotConverged)
}
