package mdp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func TestSolveChainOptimal(t *testing.T) {
	m := ExtractModel(chainWorld{})
	sol, err := Solve(m, Config{Gamma: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	checkRowStochastic(t, sol.Policy)

	if got := sol.Policy.At(0, 1); got != 1 {
		t.Errorf("optimal policy picks action 1 in state 0 with prob %v, want 1", got)
	}
	if got := sol.V.AtVec(0); !scalar.EqualWithinAbs(got, 1, 1e-6) {
		t.Errorf("v*[0] = %v, want 1", got)
	}
	if got := sol.V.AtVec(1); !scalar.EqualWithinAbs(got, 0, 1e-8) {
		t.Errorf("v*[1] = %v, want 0", got)
	}
	if got := sol.Q.At(0, 0); !scalar.EqualWithinAbs(got, 0.9, 1e-6) {
		t.Errorf("Q*[0,0] = %v, want 0.9", got)
	}
	if got := sol.Q.At(0, 1); !scalar.EqualWithinAbs(got, 1, 1e-6) {
		t.Errorf("Q*[0,1] = %v, want 1", got)
	}

	// the deterministic policy space has A^S = 4 members
	if sol.Rounds < 1 || sol.Rounds > 4 {
		t.Errorf("converged in %d rounds, want within [1, 4]", sol.Rounds)
	}
}

// Each greedy step must leave every state's value at least as high as the
// round before.
func TestImprovementIsMonotone(t *testing.T) {
	m := ExtractModel(chainWorld{})
	cfg := Config{Gamma: 0.9}

	policy := UniformPolicy(m.S, m.A)
	var prev *mat.VecDense
	for round := 0; round < 10; round++ {
		v, _, err := EvaluatePolicy(m, policy, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if prev != nil {
			for s := 0; s < m.S; s++ {
				if v.AtVec(s) < prev.AtVec(s)-1e-9 {
					t.Fatalf("round %d: v[%d] dropped from %v to %v", round, s, prev.AtVec(s), v.AtVec(s))
				}
			}
		}
		prev = v

		improved := GreedyPolicy(QFromV(m, v, cfg.Gamma))
		if mat.Equal(policy, improved) {
			return
		}
		policy = improved
	}
	t.Fatal("policy never stabilized within 10 rounds")
}

// Q must satisfy the one-step lookahead identity as plain algebra, not an
// iterative approximation.
func TestQConsistency(t *testing.T) {
	m := ExtractModel(splitWorld{})
	sol, err := Solve(m, Config{Gamma: 0.8})
	if err != nil {
		t.Fatal(err)
	}
	for s := 0; s < m.S; s++ {
		for a := 0; a < m.A; a++ {
			want := m.R.At(s, a)
			for s2 := 0; s2 < m.S; s2++ {
				want += 0.8 * m.P[a].At(s2, s) * sol.V.AtVec(s2)
			}
			if diff := math.Abs(sol.Q.At(s, a) - want); diff > 1e-12 {
				t.Errorf("Q[%d,%d] = %v, want %v", s, a, sol.Q.At(s, a), want)
			}
		}
	}
}

func TestSolvePropagatesEvaluationFailure(t *testing.T) {
	m := ExtractModel(loopWorld{})
	if _, err := Solve(m, Config{Gamma: 1, MaxSweeps: 50}); err == nil {
		t.Fatal("expected an error for the undiscounted non-terminating loop")
	}
}
