// Package anim is the renderer-agnostic animation core: pose targets and
// their per-frame approach, wind-driven secondary motion, body deformation and
// fan dynamics. Nothing here knows about scene nodes or GPUs; the game/lion
// adapter copies the results into the scene graph once per frame.
//
// All rates are applied once per frame, not per second, so animation speed
// follows the display refresh rate.
package anim

// Mode selects how the lion reacts to the pointer.
type Mode int

const (
	// Look follows the pointer with head and eyes.
	Look Mode = iota
	// Cool recoils from the pointer, squints and sways in the wind.
	Cool
)

func (m Mode) String() string {
	switch m {
	case Look:
		return "look"
	case Cool:
		return "cool"
	default:
		return "unknown"
	}
}

// State is the engagement state of the behavior machine.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Machine is the two-state engage/release machine. It is level-triggered:
// the frame loop reads Mode every tick rather than reacting to transitions.
type Machine struct {
	state State
}

// Engage moves Idle to Active. It reports whether the state changed.
func (m *Machine) Engage() bool {
	if m.state == Active {
		return false
	}
	m.state = Active
	return true
}

// Release moves Active to Idle. It reports whether the state changed.
func (m *Machine) Release() bool {
	if m.state == Idle {
		return false
	}
	m.state = Idle
	return true
}

// State returns the current engagement state.
func (m *Machine) State() State {
	return m.state
}

// Mode maps the state to the pose mode: Active is Cool, Idle is Look.
func (m *Machine) Mode() Mode {
	if m.state == Active {
		return Cool
	}
	return Look
}
