package mdp

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// UniformPolicy returns the S×A row-stochastic policy that gives every
// action equal probability in every state. This is the starting point of
// policy iteration.
func UniformPolicy(states, actions int) *mat.Dense {
	pi := mat.NewDense(states, actions, nil)
	p := 1.0 / float64(actions)
	for s := 0; s < states; s++ {
		for a := 0; a < actions; a++ {
			pi.Set(s, a, p)
		}
	}
	return pi
}

// GreedyPolicy builds a deterministic policy from an action-value table:
// probability 1 on the maximal action of each row, 0 elsewhere. Ties go to
// the lowest action index.
func GreedyPolicy(q *mat.Dense) *mat.Dense {
	states, actions := q.Dims()
	pi := mat.NewDense(states, actions, nil)
	for s := 0; s < states; s++ {
		best := 0
		for a := 1; a < actions; a++ {
			if q.At(s, a) > q.At(s, best) {
				best = a
			}
		}
		pi.Set(s, best, 1)
	}
	return pi
}

// SampleAction draws an action from the policy's distribution at state.
func SampleAction(rng *rand.Rand, policy *mat.Dense, state int) int {
	_, actions := policy.Dims()
	v := rng.Float64()
	cumulative := 0.0
	for a := 0; a < actions; a++ {
		cumulative += policy.At(state, a)
		if v < cumulative {
			return a
		}
	}
	// rounding left v past the cumulative sum
	return actions - 1
}
