// Package core defines the types shared between the console loop and the
// individual game and editor screens.
package core

// Screen is the interface every game, editor and menu implements. The
// console drives one active screen per frame: Update, then HandleInput,
// then Render into the LED grid. A screen signals it is finished by
// returning false from Running; the console then advances its state
// machine.
type Screen interface {
	// Update advances the screen's state by dt seconds.
	Update(dt float64)

	// Render draws the screen into the LED grid.
	Render()

	// HandleInput processes this frame's keyboard input.
	HandleInput(in *Input)

	// Running reports whether the screen is still active.
	Running() bool
}

// State identifies the console's top-level state.
type State uint8

const (
	StateBoot State = iota
	StateMenu
	StatePlaying
	StateEditor
)

// Manager tracks console state transitions.
type Manager struct {
	state State
}

// NewManager starts in the boot state.
func NewManager() *Manager {
	return &Manager{state: StateBoot}
}

// State returns the current state.
func (m *Manager) State() State {
	return m.state
}

// SetState changes the current state.
func (m *Manager) SetState(s State) {
	m.state = s
}
