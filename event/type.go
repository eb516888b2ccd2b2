package event

import "time"

// EventType represents the type of scene event
type EventType int

const (
	// === Pointer Input ===

	// EventPointerDown begins a single-pointer drag
	// Trigger: mouse button press | Consumer: input.Router | Payload: *PointerPayload
	EventPointerDown EventType = iota + 1

	// EventPointerMove updates an in-flight drag
	// Trigger: mouse drag | Consumer: input.Router | Payload: *PointerPayload
	EventPointerMove

	// EventPointerUp ends a drag
	// Trigger: mouse release | Consumer: input.Router | Payload: *PointerPayload
	EventPointerUp

	// EventWheel zooms around the cursor by delta sign
	// Trigger: mouse wheel | Consumer: input.Router | Payload: *WheelPayload
	EventWheel

	// === Touch Input ===

	// EventTouchStart reports the active touch set after a finger lands
	// Consumer: input.Router | Payload: *TouchPayload
	EventTouchStart

	// EventTouchMove reports the active touch set after motion
	// Consumer: input.Router | Payload: *TouchPayload
	EventTouchMove

	// EventTouchEnd reports the remaining touch set after a finger lifts
	// Consumer: input.Router | Payload: *TouchPayload
	EventTouchEnd

	// === Keyboard Camera Control ===

	// EventKeyPan pans the camera by a screen delta
	// Consumer: input.Router | Payload: *PanPayload
	EventKeyPan

	// EventKeyZoom zooms around the viewport center
	// Consumer: input.Router | Payload: *ZoomPayload
	EventKeyZoom

	// === Narrative Commands ===

	// EventUnlock is the one-shot signal from the unlock gesture
	// Consumer: narrative.Sequencer | Payload: nil
	EventUnlock

	// EventProceed is the main menu confirmation
	// Consumer: narrative.Sequencer | Payload: nil
	EventProceed

	// EventTap is a user tap that may skip the message hold
	// Consumer: narrative.Sequencer | Payload: nil
	EventTap

	// === Host ===

	// EventResize reports new terminal dimensions in cells
	// Consumer: engine | Payload: *ResizePayload
	EventResize

	// EventFocus reports terminal focus changes
	// Consumer: engine | Payload: *FocusPayload
	EventFocus

	// EventConfigReload carries runtime tunables re-read from the config file
	// Consumer: engine | Payload: *ConfigReloadPayload
	EventConfigReload

	// EventQuit requests loop termination
	// Consumer: engine | Payload: nil
	EventQuit
)

var eventTypeNames = map[EventType]string{
	EventPointerDown:  "PointerDown",
	EventPointerMove:  "PointerMove",
	EventPointerUp:    "PointerUp",
	EventWheel:        "Wheel",
	EventTouchStart:   "TouchStart",
	EventTouchMove:    "TouchMove",
	EventTouchEnd:     "TouchEnd",
	EventKeyPan:       "KeyPan",
	EventKeyZoom:      "KeyZoom",
	EventUnlock:       "Unlock",
	EventProceed:      "Proceed",
	EventTap:          "Tap",
	EventResize:       "Resize",
	EventFocus:        "Focus",
	EventConfigReload: "ConfigReload",
	EventQuit:         "Quit",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// ZoomSource identifies the gesture that last changed the camera target scale
type ZoomSource int

const (
	ZoomNone ZoomSource = iota
	ZoomWheel
	ZoomPinch
	ZoomKeyboard
)

var zoomSourceNames = map[ZoomSource]string{
	ZoomNone:     "none",
	ZoomWheel:    "wheel",
	ZoomPinch:    "pinch",
	ZoomKeyboard: "keyboard",
}

func (z ZoomSource) String() string {
	if name, ok := zoomSourceNames[z]; ok {
		return name
	}
	return "unknown"
}

// ParseZoomSource maps a config name back to a source
func ParseZoomSource(name string) (ZoomSource, bool) {
	for src, n := range zoomSourceNames {
		if n == name && src != ZoomNone {
			return src, true
		}
	}
	return ZoomNone, false
}
