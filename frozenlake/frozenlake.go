// Package frozenlake is a tabular port of the classic frozen-lake
// grid world: an agent walks from the start tile to the goal across ice
// that may be slippery, and falls through holes. The full transition table
// is precomputed at construction, so the lake serves both as declared
// dynamics for the planner and as a live steppable environment.
package frozenlake

import (
	"fmt"
	"math/rand"

	"github.com/CodeStranger-Fred/policyiter/mdp"
)

// Actions, in grid order.
const (
	Left = iota
	Down
	Right
	Up
)

// NumActions is the size of the action set, identical in every state.
const NumActions = 4

const (
	tileStart  = 'S'
	tileFrozen = 'F'
	tileHole   = 'H'
	tileGoal   = 'G'
)

// Lake is a frozen-lake instance. It implements mdp.Dynamics and
// mdp.Stepper; Step samples from the same precomputed table the planner
// extracts its model from.
type Lake struct {
	name     string
	desc     []string
	rows     int
	cols     int
	slippery bool

	table [][][]mdp.Outcome // [state][action]
	start int
	state int
	rng   *rand.Rand
}

// New builds one of the built-in lakes by name ("4x4" or "8x8").
func New(name string, slippery bool, seed int64) (*Lake, error) {
	desc, ok := builtinMaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown map %q (have %v)", name, Builtins())
	}
	return NewFromDesc(name, desc, slippery, seed)
}

// NewFromDesc builds a lake from a map descriptor, one string per row of
// tiles S, F, H, and G. The descriptor is validated and the transition
// table built up front.
func NewFromDesc(name string, desc []string, slippery bool, seed int64) (*Lake, error) {
	if err := validateDesc(desc); err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	l := &Lake{
		name:     name,
		desc:     desc,
		rows:     len(desc),
		cols:     len(desc[0]),
		slippery: slippery,
		rng:      rand.New(rand.NewSource(seed)),
	}
	for s := 0; s < l.rows*l.cols; s++ {
		if l.tile(s) == tileStart {
			l.start = s
		}
	}
	l.buildTable()
	l.state = l.start
	return l, nil
}

func (l *Lake) buildTable() {
	states := l.rows * l.cols
	l.table = make([][][]mdp.Outcome, states)
	for s := range l.table {
		l.table[s] = make([][]mdp.Outcome, NumActions)
		for a := 0; a < NumActions; a++ {
			if l.terminalTile(s) {
				// absorbing: dynamics degenerate to a reward-free self-loop
				l.table[s][a] = []mdp.Outcome{{Prob: 1, Next: s, Terminal: true}}
				continue
			}
			if !l.slippery {
				l.table[s][a] = []mdp.Outcome{l.outcome(s, a, 1)}
				continue
			}
			// the ice carries the agent in the intended direction or
			// either perpendicular one, each a third of the time
			outcomes := make([]mdp.Outcome, 0, 3)
			for _, move := range []int{(a - 1 + NumActions) % NumActions, a, (a + 1) % NumActions} {
				outcomes = append(outcomes, l.outcome(s, move, 1.0/3.0))
			}
			l.table[s][a] = outcomes
		}
	}
}

func (l *Lake) outcome(s, move int, prob float64) mdp.Outcome {
	row, col := s/l.cols, s%l.cols
	switch move {
	case Left:
		col = max(col-1, 0)
	case Down:
		row = min(row+1, l.rows-1)
	case Right:
		col = min(col+1, l.cols-1)
	case Up:
		row = max(row-1, 0)
	}
	next := row*l.cols + col
	o := mdp.Outcome{Prob: prob, Next: next, Terminal: l.terminalTile(next)}
	if l.tile(next) == tileGoal {
		o.Reward = 1
	}
	return o
}

func (l *Lake) tile(s int) byte {
	return l.desc[s/l.cols][s%l.cols]
}

func (l *Lake) terminalTile(s int) bool {
	t := l.tile(s)
	return t == tileHole || t == tileGoal
}

// Name reports which map this lake was built from.
func (l *Lake) Name() string { return l.name }

// Rows and Cols give the grid dimensions.
func (l *Lake) Rows() int { return l.rows }
func (l *Lake) Cols() int { return l.cols }

// Start is the index of the S tile.
func (l *Lake) Start() int { return l.start }

// NumStates implements mdp.Dynamics.
func (l *Lake) NumStates() int { return l.rows * l.cols }

// NumActions implements mdp.Dynamics.
func (l *Lake) NumActions() int { return NumActions }

// Outcomes implements mdp.Dynamics. The returned slice is shared; callers
// must not mutate it.
func (l *Lake) Outcomes(state, action int) []mdp.Outcome {
	return l.table[state][action]
}

// Reset implements mdp.Stepper, putting the agent back on the start tile.
func (l *Lake) Reset() int {
	l.state = l.start
	return l.state
}

// Step implements mdp.Stepper by sampling one outcome of the current
// state's dynamics for the given action.
func (l *Lake) Step(action int) (next int, reward float64, done bool) {
	outcomes := l.table[l.state][action]
	v := l.rng.Float64()
	cumulative := 0.0
	chosen := outcomes[len(outcomes)-1]
	for _, o := range outcomes {
		cumulative += o.Prob
		if v < cumulative {
			chosen = o
			break
		}
	}
	l.state = chosen.Next
	return chosen.Next, chosen.Reward, chosen.Terminal
}
