package input

import "sort"

// actionRegistry maps keymap action names to actions
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit":      ActionQuit,
	"pan_left":  ActionPanLeft,
	"pan_right": ActionPanRight,
	"pan_up":    ActionPanUp,
	"pan_down":  ActionPanDown,
	"zoom_in":   ActionZoomIn,
	"zoom_out":  ActionZoomOut,
	"unlock":    ActionUnlock,
	"confirm":   ActionConfirm,
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String returns the keymap name of the action
func (a Action) String() string {
	for n, v := range actionRegistry {
		if v == a {
			return n
		}
	}
	return "unknown"
}
