package mdp

import "gonum.org/v1/gonum/mat"

// QFromV derives the action-value table from a state-value function by a
// single one-step lookahead through the full transition model:
// Q[s,a] = r[s,a] + γ·Σ_s2 P[s2,s,a]·v[s2]. Pure algebra, no iteration.
func QFromV(m *Model, v *mat.VecDense, gamma float64) *mat.Dense {
	q := mat.NewDense(m.S, m.A, nil)
	expected := mat.NewVecDense(m.S, nil)
	for a := 0; a < m.A; a++ {
		expected.MulVec(m.P[a].T(), v)
		for s := 0; s < m.S; s++ {
			q.Set(s, a, m.R.At(s, a)+gamma*expected.AtVec(s))
		}
	}
	return q
}
