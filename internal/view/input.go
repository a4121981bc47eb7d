package view

import "github.com/gdamore/tcell/v2"

// Action is a viewer command bound to a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionDeeper
	ActionShallower
	ActionReseed
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyDown, tcell.KeyPgDn:
		return ActionDeeper
	case tcell.KeyUp, tcell.KeyPgUp:
		return ActionShallower
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}
	switch ev.Rune() {
	case '>', 'j', 'J':
		return ActionDeeper
	case '<', 'k', 'K':
		return ActionShallower
	case 'r', 'R':
		return ActionReseed
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDeeper:
		return "deeper"
	case ActionShallower:
		return "shallower"
	case ActionReseed:
		return "reseed"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}
