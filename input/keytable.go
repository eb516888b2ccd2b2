package input

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyLeft:   ActionPanLeft,
			tcell.KeyRight:  ActionPanRight,
			tcell.KeyUp:     ActionPanUp,
			tcell.KeyDown:   ActionPanDown,
			tcell.KeyEnter:  ActionConfirm,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			'h': ActionPanLeft,
			'l': ActionPanRight,
			'k': ActionPanUp,
			'j': ActionPanDown,
			'+': ActionZoomIn,
			'=': ActionZoomIn,
			'-': ActionZoomOut,
			'u': ActionUnlock,
			' ': ActionConfirm,
		},
	}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Binding is one key or rune bound to an action, for listing
type Binding struct {
	Key    string
	Action Action
}

// Bindings lists every binding sorted by key name
func (kt *KeyTable) Bindings() []Binding {
	out := make([]Binding, 0, len(kt.Keys)+len(kt.Runes))
	for k, a := range kt.Keys {
		name, ok := tcell.KeyNames[k]
		if !ok {
			name = fmt.Sprintf("Key(%d)", k)
		}
		out = append(out, Binding{Key: name, Action: a})
	}
	for r, a := range kt.Runes {
		out = append(out, Binding{Key: string(r), Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
