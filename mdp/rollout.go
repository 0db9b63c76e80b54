package mdp

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RunEpisode plays one episode of the policy against a live environment,
// sampling an action from the policy's distribution at every visited state,
// and returns the undiscounted sum of rewards. The episode ends at a
// terminal state or after maxSteps steps, whichever comes first; maxSteps
// <= 0 selects DefaultMaxEpisodeSteps.
func RunEpisode(env Stepper, policy *mat.Dense, maxSteps int, rng *rand.Rand) float64 {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxEpisodeSteps
	}
	state := env.Reset()
	total := 0.0
	for t := 0; t < maxSteps; t++ {
		next, reward, done := env.Step(SampleAction(rng, policy, state))
		total += reward
		if done {
			break
		}
		state = next
	}
	return total
}

// TestPolicy runs episodes independent episodes of the policy and returns
// their returns, one per episode, for downstream reporting.
func TestPolicy(env Stepper, policy *mat.Dense, episodes, maxSteps int, rng *rand.Rand) []float64 {
	returns := make([]float64, episodes)
	for i := range returns {
		returns[i] = RunEpisode(env, policy, maxSteps, rng)
	}
	return returns
}
