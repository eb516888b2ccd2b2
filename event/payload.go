package event

import "time"

// PointerPayload is a pointer position in screen pixels
type PointerPayload struct {
	X, Y float64
}

// WheelPayload carries wheel direction and cursor position in screen pixels
// Only the sign of Delta is meaningful: positive zooms out, negative zooms in
type WheelPayload struct {
	Delta float64
	X, Y  float64
}

// Touch is one active contact in screen pixels
type Touch struct {
	ID   int
	X, Y float64
}

// TouchPayload is the full set of contacts still down after the change
type TouchPayload struct {
	Touches []Touch
}

// PanPayload is a pan direction in key steps, scaled by the configured step
type PanPayload struct {
	DX, DY float64
}

// ZoomPayload selects zoom in (true) or out around the viewport center
type ZoomPayload struct {
	In bool
}

// ResizePayload is the terminal size in cells
type ResizePayload struct {
	Cols, Rows int
}

// FocusPayload reports whether the terminal gained focus
type FocusPayload struct {
	Focused bool
}

// ConfigReloadPayload carries tunables that can change while running
type ConfigReloadPayload struct {
	Damping      float64
	ZoomIn       float64
	ZoomOut      float64
	KeyPanStep   float64
	Glow         bool
	Volume       float64
	FrameRate    int
	MinScale     float64
	MaxScale     float64
	RevealScale  float64
	ReloadedFrom string
	ReloadedAt   time.Time
}
