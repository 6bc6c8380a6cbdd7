package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui2048/internal/core"
)

// defaultGameKeys lists the in-game bindings. Arrows, WASD and hjkl all
// slide the board.
var defaultGameKeys = map[core.Action][]string{
	core.ActionUp:      {"up", "w", "k"},
	core.ActionDown:    {"down", "s", "j"},
	core.ActionLeft:    {"left", "a", "h"},
	core.ActionRight:   {"right", "d", "l"},
	core.ActionConfirm: {"enter"},
	core.ActionBack:    {"esc", "b"},
	core.ActionPause:   {"p", " "},
	core.ActionRestart: {"r"},
	core.ActionQuit:    {"q", "ctrl+c"},
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var defaultMenuKeys = map[MenuAction][]string{
	MenuActionUp:         {"up", "w", "k"},
	MenuActionDown:       {"down", "s", "j"},
	MenuActionLeft:       {"left", "a", "h"},
	MenuActionRight:      {"right", "d", "l"},
	MenuActionSelect:     {"enter", " "},
	MenuActionBack:       {"esc", "b"},
	MenuActionScoreboard: {"tab"},
	MenuActionQuit:       {"q", "ctrl+c"},
}

// KeyMapper translates Bubble Tea key messages into game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}
	for action, keys := range defaultGameKeys {
		for _, k := range keys {
			km.game[k] = action
		}
	}
	for action, keys := range defaultMenuKeys {
		for _, k := range keys {
			km.menu[k] = action
		}
	}
	return km
}

// Bind maps a key (as reported by tea.KeyMsg.String) to a game action,
// replacing any previous binding of that key.
func (km *KeyMapper) Bind(key string, action core.Action) {
	if action == core.ActionNone {
		delete(km.game, key)
		return
	}
	km.game[key] = action
}

// MapKey translates a key message to a game action and reports whether it
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame. Returns true if the key
// was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
