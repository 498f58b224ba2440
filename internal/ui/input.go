package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minirogue/internal/game"
)

// Command is what a key press asks the frontend to do.
type Command int

const (
	CommandNone Command = iota
	CommandIntent
	CommandQuit
)

// DecodeKey maps a key event to a command. Arrow keys and WASD move, space
// and enter wait, and Esc, Ctrl-C or q quit. Keys outside that set decode to
// CommandNone.
func DecodeKey(ev *tcell.EventKey) (Command, game.Intent) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, game.IntentNone
	case tcell.KeyUp:
		return CommandIntent, game.MoveUp
	case tcell.KeyDown:
		return CommandIntent, game.MoveDown
	case tcell.KeyLeft:
		return CommandIntent, game.MoveLeft
	case tcell.KeyRight:
		return CommandIntent, game.MoveRight
	case tcell.KeyEnter:
		return CommandIntent, game.Wait
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit, game.IntentNone
		case 'w', 'W':
			return CommandIntent, game.MoveUp
		case 's', 'S':
			return CommandIntent, game.MoveDown
		case 'a', 'A':
			return CommandIntent, game.MoveLeft
		case 'd', 'D':
			return CommandIntent, game.MoveRight
		case ' ':
			return CommandIntent, game.Wait
		}
	}
	return CommandNone, game.IntentNone
}
