// Package game provides the turn controller that owns the room chain, the
// entities and the player.
package game

// State represents the current game state.
type State int

const (
	// StateAlive accepts intents.
	StateAlive State = iota
	// StateGameOver is terminal: the player died and intents are ignored.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
