package component

import "github.com/jakecoffman/cp"

// Input is a per-tick snapshot of held buttons. Edges are derived by the
// consumer against its own previous-tick state.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
	Dash  bool
}

var InputComponent = NewComponent[Input]("input")

// Direction returns the held directional input as a unit vector, or the zero
// vector when nothing (or only opposing keys) is held.
func (in Input) Direction() cp.Vector {
	var d cp.Vector
	if in.Right {
		d.X++
	}
	if in.Left {
		d.X--
	}
	if in.Down {
		d.Y++
	}
	if in.Up {
		d.Y--
	}
	if d.X == 0 && d.Y == 0 {
		return d
	}
	return d.Normalize()
}

// MoveX returns -1, 0 or 1 for the held horizontal input.
func (in Input) MoveX() float64 {
	switch {
	case in.Right && !in.Left:
		return 1
	case in.Left && !in.Right:
		return -1
	}
	return 0
}
