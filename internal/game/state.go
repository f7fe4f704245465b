// Package game provides the session state, the turn engine and the main loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the turn loop: one move per input.
	StatePlaying State = iota
	// StateGameOver is entered on victory or defeat; the field can still be inspected.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
