package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EvaluatePolicy computes the state-value function of a row-stochastic
// policy by iterating the Bellman expectation backup to a fixed point. The
// update is synchronous: every sweep reads a complete copy of the previous
// iterate, so no state ever sees a half-updated neighbour. It returns the
// value vector, the number of sweeps taken, and ErrNotConverged if the
// sweep cap runs out first.
//
// The policy is trusted to be row-stochastic; the caller guarantees it.
func EvaluatePolicy(m *Model, policy *mat.Dense, cfg Config) (*mat.VecDense, int, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, 0, err
	}
	rPi, pPi := collapsePolicy(m, policy)

	vOld := mat.NewVecDense(m.S, nil)
	vNew := mat.NewVecDense(m.S, nil)
	for sweep := 1; sweep <= cfg.MaxSweeps; sweep++ {
		// v_new = r_π + γ·P_πᵀ·v_old for all states at once
		vNew.MulVec(pPi.T(), vOld)
		vNew.ScaleVec(cfg.Gamma, vNew)
		vNew.AddVec(rPi, vNew)

		delta := floats.Distance(vNew.RawVector().Data, vOld.RawVector().Data, math.Inf(1))
		vOld, vNew = vNew, vOld
		if delta < cfg.Epsilon {
			return vOld, sweep, nil
		}
	}
	return nil, cfg.MaxSweeps, fmt.Errorf("policy evaluation after %d sweeps: %w", cfg.MaxSweeps, ErrNotConverged)
}

// collapsePolicy folds the action dimension out of the model under the
// given policy: r_π[s] = Σ_a π(a|s)·r(s,a) and
// P_π[s2,s1] = Σ_a π(a|s1)·P[s2,s1,a]. Computed once per evaluation call.
func collapsePolicy(m *Model, policy *mat.Dense) (*mat.VecDense, *mat.Dense) {
	rPi := mat.NewVecDense(m.S, nil)
	for s := 0; s < m.S; s++ {
		rPi.SetVec(s, mat.Dot(m.R.RowView(s), policy.RowView(s)))
	}

	pPi := mat.NewDense(m.S, m.S, nil)
	for a := 0; a < m.A; a++ {
		for s1 := 0; s1 < m.S; s1++ {
			w := policy.At(s1, a)
			if w == 0 {
				continue
			}
			for s2 := 0; s2 < m.S; s2++ {
				pPi.Set(s2, s1, pPi.At(s2, s1)+w*m.P[a].At(s2, s1))
			}
		}
	}
	return rPi, pPi
}
