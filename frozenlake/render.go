package frozenlake

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"
)

var actionArrows = [NumActions]string{"←", "↓", "→", "↑"}

// ActionName returns a printable name for an action index.
func ActionName(a int) string {
	switch a {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	}
	return fmt.Sprintf("action %d", a)
}

// Render writes the lake tiles, highlighting the agent's current cell.
func (l *Lake) Render(w io.Writer) {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			s := r*l.cols + c
			cell := fmt.Sprintf(" %c ", l.tile(s))
			switch {
			case s == l.state:
				fmt.Fprint(w, aurora.Green(cell))
			case l.tile(s) == tileHole:
				fmt.Fprint(w, aurora.Red(cell))
			case l.tile(s) == tileGoal:
				fmt.Fprint(w, aurora.Yellow(cell))
			default:
				fmt.Fprint(w, aurora.Blue(cell))
			}
			fmt.Fprint(w, aurora.White("|"))
		}
		fmt.Fprintln(w)
	}
}

// RenderValues writes a state-value function as a grid in the lake's shape.
func (l *Lake) RenderValues(w io.Writer, v *mat.VecDense) {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			fmt.Fprint(w, aurora.Blue(formatValue(v.AtVec(r*l.cols+c))))
			fmt.Fprint(w, aurora.White("|"))
		}
		fmt.Fprintln(w)
	}
}

// RenderPolicy writes a deterministic policy as a grid of arrows; holes and
// the goal have no useful action and render as their tiles.
func (l *Lake) RenderPolicy(w io.Writer, policy *mat.Dense) {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			s := r*l.cols + c
			if l.terminalTile(s) {
				cell := fmt.Sprintf(" %c ", l.tile(s))
				if l.tile(s) == tileGoal {
					fmt.Fprint(w, aurora.Yellow(cell))
				} else {
					fmt.Fprint(w, aurora.Red(cell))
				}
			} else {
				best := 0
				for a := 1; a < NumActions; a++ {
					if policy.At(s, a) > policy.At(s, best) {
						best = a
					}
				}
				fmt.Fprint(w, aurora.Green(fmt.Sprintf(" %s ", actionArrows[best])))
			}
			fmt.Fprint(w, aurora.White("|"))
		}
		fmt.Fprintln(w)
	}
}

func formatValue(x float64) string {
	if x < 0 {
		return fmt.Sprintf(" -%05.2f ", -x)
	}
	return fmt.Sprintf("  %05.2f ", x)
}
