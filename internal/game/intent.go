package game

import "github.com/samdwyer/minirogue/internal/world"

// Intent is one discrete player action.
type Intent int

const (
	IntentNone Intent = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Wait
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case Wait:
		return "wait"
	default:
		return "none"
	}
}

// Valid reports whether i is one of the five canonical intents.
func (i Intent) Valid() bool {
	return i >= MoveLeft && i <= Wait
}

// Direction returns the movement direction of a move intent.
func (i Intent) Direction() (world.Direction, bool) {
	switch i {
	case MoveLeft:
		return world.West, true
	case MoveRight:
		return world.East, true
	case MoveUp:
		return world.North, true
	case MoveDown:
		return world.South, true
	default:
		return 0, false
	}
}
