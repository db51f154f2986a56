package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/happymatch/internal/core"
)

// defaultGameKeys binds key names, as reported by tea.KeyMsg.String, to
// game actions.
var defaultGameKeys = map[string]core.Action{
	"up": core.ActionUp, "w": core.ActionUp,
	"down": core.ActionDown, "s": core.ActionDown,
	"left": core.ActionLeft, "a": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight,
	"enter": core.ActionConfirm, " ": core.ActionConfirm,
	"esc": core.ActionBack, "b": core.ActionBack,
	"h": core.ActionHint, "?": core.ActionHint,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
}

// MenuAction is an action on the menu screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var defaultMenuKeys = map[string]MenuAction{
	"up": MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"esc": MenuActionBack, "b": MenuActionBack,
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,
	"tab": MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea input to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: defaultGameKeys, menu: defaultMenuKeys}
}

// MapKey translates a key message to a game action and reports whether
// it asks to quit. Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left button press as a click in frame.
// Returns true if the event was used.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.SetClick(msg.X, msg.Y)
	return true
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
