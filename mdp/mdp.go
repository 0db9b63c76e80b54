// Package mdp solves finite tabular Markov decision processes by exact
// dynamic-programming policy iteration: the declared dynamics of an
// environment are extracted into dense transition and reward tables, a
// policy is evaluated to its Bellman fixed point, and greedy improvement
// repeats until the policy is stable. A rollout simulator plays the
// resulting policy against the live environment for empirical returns.
package mdp

import "gonum.org/v1/gonum/mat"

// Outcome is one entry of an environment's declared dynamics for a
// (state, action) pair: with probability Prob the agent lands in Next,
// collects Reward, and is done if Terminal.
type Outcome struct {
	Prob     float64
	Next     int
	Reward   float64
	Terminal bool
}

// Dynamics exposes the full transition structure of a finite MDP.
// States are indexed 0..NumStates()-1 and every action 0..NumActions()-1
// is available in every state.
type Dynamics interface {
	NumStates() int
	NumActions() int
	Outcomes(state, action int) []Outcome
}

// Stepper is a live environment that can be reset to its initial state and
// stepped one action at a time.
type Stepper interface {
	Reset() int
	Step(action int) (next int, reward float64, done bool)
}

// Model holds the tabular MDP extracted from an environment's dynamics.
// P[a] is the S×S transition matrix of action a, with P[a].At(s2, s1) the
// probability of landing in s2 after taking a in s1. R is S×A with
// R.At(s, a) the expected immediate reward. Both are built once by
// ExtractModel and read-only afterwards.
type Model struct {
	S, A int
	P    []*mat.Dense
	R    *mat.Dense
}

// ExtractModel walks every (state, action) outcome list and accumulates the
// transition tensor and the expected-reward table. An outcome list may name
// the same next state more than once (slippery moves against a border do);
// their probabilities sum. The environment's declared probabilities are
// trusted as given.
func ExtractModel(d Dynamics) *Model {
	m := &Model{
		S: d.NumStates(),
		A: d.NumActions(),
		R: mat.NewDense(d.NumStates(), d.NumActions(), nil),
	}
	m.P = make([]*mat.Dense, m.A)
	for a := 0; a < m.A; a++ {
		m.P[a] = mat.NewDense(m.S, m.S, nil)
	}
	for s := 0; s < m.S; s++ {
		for a := 0; a < m.A; a++ {
			for _, o := range d.Outcomes(s, a) {
				m.R.Set(s, a, m.R.At(s, a)+o.Prob*o.Reward)
				m.P[a].Set(o.Next, s, m.P[a].At(o.Next, s)+o.Prob)
			}
		}
	}
	return m
}
