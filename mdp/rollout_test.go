package mdp

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// endlessEnv never terminates; it counts how often it was stepped.
type endlessEnv struct {
	steps int
}

func (e *endlessEnv) Reset() int { return 0 }

func (e *endlessEnv) Step(action int) (int, float64, bool) {
	e.steps++
	return 0, 0.1, false
}

// corridorEnv terminates after three steps with rewards 1, 2, 3.
type corridorEnv struct {
	pos int
}

func (e *corridorEnv) Reset() int {
	e.pos = 0
	return 0
}

func (e *corridorEnv) Step(action int) (int, float64, bool) {
	e.pos++
	return e.pos, float64(e.pos), e.pos == 3
}

func singleActionPolicy(states int) *mat.Dense {
	pi := mat.NewDense(states, 1, nil)
	for s := 0; s < states; s++ {
		pi.Set(s, 0, 1)
	}
	return pi
}

func TestRunEpisodeRespectsStepCap(t *testing.T) {
	env := &endlessEnv{}
	rng := rand.New(rand.NewSource(1))
	ret := RunEpisode(env, singleActionPolicy(1), 25, rng)
	if env.steps != 25 {
		t.Errorf("stepped %d times, want exactly 25", env.steps)
	}
	if math.IsNaN(ret) || math.IsInf(ret, 0) {
		t.Errorf("return = %v, want finite", ret)
	}
}

func TestRunEpisodeDefaultCap(t *testing.T) {
	env := &endlessEnv{}
	rng := rand.New(rand.NewSource(1))
	RunEpisode(env, singleActionPolicy(1), 0, rng)
	if env.steps != DefaultMaxEpisodeSteps {
		t.Errorf("stepped %d times, want %d", env.steps, DefaultMaxEpisodeSteps)
	}
}

func TestRunEpisodeStopsAtTerminal(t *testing.T) {
	env := &corridorEnv{}
	rng := rand.New(rand.NewSource(1))
	if ret := RunEpisode(env, singleActionPolicy(4), 100, rng); ret != 6 {
		t.Errorf("return = %v, want 6", ret)
	}
}

func TestTestPolicyReturnsOnePerEpisode(t *testing.T) {
	env := &corridorEnv{}
	rng := rand.New(rand.NewSource(1))
	returns := TestPolicy(env, singleActionPolicy(4), 7, 100, rng)
	if len(returns) != 7 {
		t.Fatalf("got %d returns, want 7", len(returns))
	}
	for i, r := range returns {
		if r != 6 {
			t.Errorf("episode %d return = %v, want 6", i, r)
		}
	}
}
