package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game loop only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // h, a, Left arrow
	ActionDown         // j, s, Down arrow
	ActionUp           // k, w, Up arrow
	ActionRight        // l, d, Right arrow
	ActionPause        // p, Space, Esc - toggle pause
	ActionQuit         // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action requests a direction change.
func (a Action) IsMovement() bool {
	return a >= ActionLeft && a <= ActionRight
}
