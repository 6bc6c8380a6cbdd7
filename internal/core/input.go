package core

import "strings"

// Action is a semantic intent decoded from a key press.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // Slide up: W, K, Up arrow
	ActionDown           // Slide down: S, J, Down arrow
	ActionLeft           // Slide left: A, H, Left arrow
	ActionRight          // Slide right: D, L, Right arrow
	ActionConfirm        // Enter
	ActionBack           // B, Escape - leave to the menu
	ActionRestart        // R - new run after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Space

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ParseAction returns the action with the given name, ignoring case.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(a), true
		}
	}
	return ActionNone, false
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	set uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.set |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.set&(1<<a) != 0
}

// First returns the first of the given actions present in the frame.
func (f InputFrame) First(actions ...Action) (Action, bool) {
	for _, a := range actions {
		if f.Has(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.set = 0
}
