package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, "up"
	ActionDown           // S, J, "down"
	ActionLeft           // A, H, "left"
	ActionRight          // D, L, "right"
	ActionUndo           // U, "undo"
	ActionRestart        // N, "new" - start a new game
	ActionQuit           // Q, "quit", "exit"
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether a is one of the four directional actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

var actionKeys = map[string]Action{
	"up": ActionUp, "w": ActionUp, "k": ActionUp,
	"down": ActionDown, "s": ActionDown, "j": ActionDown,
	"left": ActionLeft, "a": ActionLeft, "h": ActionLeft,
	"right": ActionRight, "d": ActionRight, "l": ActionRight,
	"undo": ActionUndo, "u": ActionUndo, "z": ActionUndo,
	"new": ActionRestart, "restart": ActionRestart, "n": ActionRestart,
	"quit": ActionQuit, "exit": ActionQuit, "q": ActionQuit,
}

// ParseAction maps a typed token to an action. Unknown tokens yield ActionNone.
func ParseAction(token string) Action {
	if a, ok := actionKeys[strings.ToLower(strings.TrimSpace(token))]; ok {
		return a
	}
	return ActionNone
}
