package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/parameter"
)

// TcellAdapter translates tcell events into scene events
// Runs on the poll goroutine; holds only its own button state
type TcellAdapter struct {
	keys    *KeyTable
	buttons tcell.ButtonMask
}

// NewTcellAdapter creates an adapter with the given key bindings
func NewTcellAdapter(keys *KeyTable) *TcellAdapter {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &TcellAdapter{keys: keys}
}

// CellToPixel maps a cell to the center of its half-block pixel pair
func CellToPixel(col, row int) (float64, float64) {
	return float64(col) + 0.5, float64(row*parameter.PixelsPerRow) + 1
}

// Translate converts one tcell event into zero or more scene events
func (a *TcellAdapter) Translate(ev tcell.Event) []event.GameEvent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return a.translateKey(e)
	case *tcell.EventMouse:
		return a.translateMouse(e)
	case *tcell.EventResize:
		cols, rows := e.Size()
		return []event.GameEvent{{
			Type:      event.EventResize,
			Payload:   &event.ResizePayload{Cols: cols, Rows: rows},
			Timestamp: e.When(),
		}}
	case *tcell.EventFocus:
		return []event.GameEvent{{
			Type:      event.EventFocus,
			Payload:   &event.FocusPayload{Focused: e.Focused},
			Timestamp: time.Now(),
		}}
	}
	return nil
}

func (a *TcellAdapter) translateKey(e *tcell.EventKey) []event.GameEvent {
	ts := e.When()
	one := func(t event.EventType, payload any) []event.GameEvent {
		return []event.GameEvent{{Type: t, Payload: payload, Timestamp: ts}}
	}

	switch a.keys.Lookup(e) {
	case ActionQuit:
		return one(event.EventQuit, nil)
	case ActionPanLeft:
		return one(event.EventKeyPan, &event.PanPayload{DX: 1})
	case ActionPanRight:
		return one(event.EventKeyPan, &event.PanPayload{DX: -1})
	case ActionPanUp:
		return one(event.EventKeyPan, &event.PanPayload{DY: 1})
	case ActionPanDown:
		return one(event.EventKeyPan, &event.PanPayload{DY: -1})
	case ActionZoomIn:
		return one(event.EventKeyZoom, &event.ZoomPayload{In: true})
	case ActionZoomOut:
		return one(event.EventKeyZoom, &event.ZoomPayload{In: false})
	case ActionUnlock:
		return one(event.EventUnlock, nil)
	case ActionConfirm:
		// Proceed and tap are each meaningful in one stage only
		return []event.GameEvent{
			{Type: event.EventProceed, Timestamp: ts},
			{Type: event.EventTap, Timestamp: ts},
		}
	}
	return nil
}

func (a *TcellAdapter) translateMouse(e *tcell.EventMouse) []event.GameEvent {
	col, row := e.Position()
	x, y := CellToPixel(col, row)
	ts := e.When()
	btn := e.Buttons()

	var out []event.GameEvent

	// Wheel notches arrive as button presses without a release
	if btn&tcell.WheelUp != 0 {
		out = append(out, event.GameEvent{Type: event.EventWheel, Payload: &event.WheelPayload{Delta: -1, X: x, Y: y}, Timestamp: ts})
	}
	if btn&tcell.WheelDown != 0 {
		out = append(out, event.GameEvent{Type: event.EventWheel, Payload: &event.WheelPayload{Delta: 1, X: x, Y: y}, Timestamp: ts})
	}

	was := a.buttons&tcell.Button1 != 0
	is := btn&tcell.Button1 != 0
	switch {
	case is && !was:
		out = append(out,
			event.GameEvent{Type: event.EventPointerDown, Payload: &event.PointerPayload{X: x, Y: y}, Timestamp: ts},
			event.GameEvent{Type: event.EventTap, Timestamp: ts},
		)
	case is && was:
		out = append(out, event.GameEvent{Type: event.EventPointerMove, Payload: &event.PointerPayload{X: x, Y: y}, Timestamp: ts})
	case !is && was:
		out = append(out, event.GameEvent{Type: event.EventPointerUp, Payload: &event.PointerPayload{X: x, Y: y}, Timestamp: ts})
	}

	a.buttons = btn &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	return out
}
