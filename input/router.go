package input

import (
	"github.com/lixenwraith/starlock/camera"
	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/vmath"
)

// Settings are the runtime-tunable gesture factors
type Settings struct {
	ZoomIn     float64
	ZoomOut    float64
	KeyPanStep float64
}

// DefaultSettings returns the compiled-in gesture factors
func DefaultSettings() Settings {
	return Settings{
		ZoomIn:     parameter.WheelZoomIn,
		ZoomOut:    parameter.WheelZoomOut,
		KeyPanStep: parameter.KeyPanStep,
	}
}

// Router turns pointer, wheel, touch and key gestures into camera target changes
// Detached routers ignore every gesture; the scene attaches it on entering exploration
type Router struct {
	cam      *camera.Camera
	settings Settings
	attached bool

	// Viewport in screen pixels, centers keyboard zoom
	viewW, viewH float64

	// Single-pointer drag
	dragging               bool
	anchorX, anchorY       float64
	anchorPanX, anchorPanY float64

	// Two-finger pinch
	pinching        bool
	pinchStartDist  float64
	touchStartScale float64
	// gestureLocked suppresses drag after a pinch until every finger lifts
	gestureLocked bool

	lastSource event.ZoomSource
}

// NewRouter creates a detached router driving cam
func NewRouter(cam *camera.Camera, settings Settings) *Router {
	return &Router{cam: cam, settings: settings}
}

// SetSettings replaces gesture factors, used by config hot reload
func (r *Router) SetSettings(s Settings) {
	r.settings = s
}

func (r *Router) Settings() Settings {
	return r.settings
}

// SetViewport records the screen size in pixels
func (r *Router) SetViewport(w, h float64) {
	r.viewW, r.viewH = w, h
}

// Attach enables gesture handling
func (r *Router) Attach() {
	r.attached = true
}

// Detach disables gesture handling and drops any gesture in flight
func (r *Router) Detach() {
	r.attached = false
	r.resetGesture()
}

func (r *Router) Attached() bool {
	return r.attached
}

// LastZoomSource reports which gesture last changed the target scale
func (r *Router) LastZoomSource() event.ZoomSource {
	return r.lastSource
}

// Dragging reports whether a single-pointer pan is in flight
func (r *Router) Dragging() bool {
	return r.dragging
}

// Pinching reports whether a two-finger pinch is in flight
func (r *Router) Pinching() bool {
	return r.pinching
}

func (r *Router) resetGesture() {
	r.dragging = false
	r.pinching = false
	r.gestureLocked = false
}

// === Pointer ===

// PointerDown records the drag anchor and the target pan at that moment
func (r *Router) PointerDown(x, y float64) {
	if !r.attached || r.pinching || r.gestureLocked {
		return
	}
	t := r.cam.Target()
	r.dragging = true
	r.anchorX, r.anchorY = x, y
	r.anchorPanX, r.anchorPanY = t.PanX, t.PanY
}

// PointerMove sets target pan to anchorPan + (p - anchor)
func (r *Router) PointerMove(x, y float64) {
	if !r.attached || !r.dragging {
		return
	}
	r.cam.SetTargetPanTo(r.anchorPanX+(x-r.anchorX), r.anchorPanY+(y-r.anchorY))
}

// PointerUp ends the drag without inertia
func (r *Router) PointerUp() {
	r.dragging = false
}

// Wheel zooms around the cursor; only the sign of delta matters
func (r *Router) Wheel(delta, x, y float64) {
	if !r.attached || delta == 0 {
		return
	}
	factor := r.settings.ZoomIn
	if delta > 0 {
		factor = r.settings.ZoomOut
	}
	r.cam.SetTargetScale(factor, x, y)
	r.lastSource = event.ZoomWheel
}

// === Touch ===

// TouchStart receives the full active touch set after a finger lands
func (r *Router) TouchStart(touches []event.Touch) {
	if !r.attached {
		return
	}
	switch {
	case len(touches) >= 2:
		r.beginPinch(touches[0], touches[1])
	case len(touches) == 1 && !r.gestureLocked && !r.pinching:
		r.PointerDown(touches[0].X, touches[0].Y)
	}
}

// TouchMove receives the full active touch set after motion
func (r *Router) TouchMove(touches []event.Touch) {
	if !r.attached {
		return
	}
	if r.pinching && len(touches) >= 2 {
		a, b := touches[0], touches[1]
		dist := vmath.Distance(a.X, a.Y, b.X, b.Y)
		if dist <= 0 || r.pinchStartDist <= 0 {
			return
		}
		mx, my := vmath.Midpoint(a.X, a.Y, b.X, b.Y)
		desired := dist / r.pinchStartDist * r.touchStartScale
		r.cam.SetTargetScale(desired/r.cam.Target().Scale, mx, my)
		r.lastSource = event.ZoomPinch
		return
	}
	if len(touches) == 1 {
		r.PointerMove(touches[0].X, touches[0].Y)
	}
}

// TouchEnd receives the remaining touch set after a finger lifts
func (r *Router) TouchEnd(touches []event.Touch) {
	if len(touches) < 2 {
		r.pinching = false
	}
	if len(touches) == 0 {
		r.dragging = false
		r.gestureLocked = false
	}
}

func (r *Router) beginPinch(a, b event.Touch) {
	r.dragging = false // pinch cancels any pan in flight
	r.pinching = true
	r.gestureLocked = true
	r.pinchStartDist = vmath.Distance(a.X, a.Y, b.X, b.Y)
	r.touchStartScale = r.cam.Target().Scale
}

// === Keyboard ===

// PanSteps shifts target pan by whole key steps
func (r *Router) PanSteps(dx, dy float64) {
	if !r.attached {
		return
	}
	r.cam.SetTargetPan(dx*r.settings.KeyPanStep, dy*r.settings.KeyPanStep)
}

// ZoomAtCenter applies one zoom step around the viewport center
func (r *Router) ZoomAtCenter(in bool) {
	if !r.attached {
		return
	}
	factor := r.settings.ZoomOut
	if in {
		factor = r.settings.ZoomIn
	}
	r.cam.SetTargetScale(factor, r.viewW/2, r.viewH/2)
	r.lastSource = event.ZoomKeyboard
}

// HandleEvent routes queued gesture events
func (r *Router) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPointerDown:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			r.PointerDown(p.X, p.Y)
		}
	case event.EventPointerMove:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			r.PointerMove(p.X, p.Y)
		}
	case event.EventPointerUp:
		r.PointerUp()
	case event.EventWheel:
		if p, ok := ev.Payload.(*event.WheelPayload); ok {
			r.Wheel(p.Delta, p.X, p.Y)
		}
	case event.EventTouchStart:
		if p, ok := ev.Payload.(*event.TouchPayload); ok {
			r.TouchStart(p.Touches)
		}
	case event.EventTouchMove:
		if p, ok := ev.Payload.(*event.TouchPayload); ok {
			r.TouchMove(p.Touches)
		}
	case event.EventTouchEnd:
		if p, ok := ev.Payload.(*event.TouchPayload); ok {
			r.TouchEnd(p.Touches)
		}
	case event.EventKeyPan:
		if p, ok := ev.Payload.(*event.PanPayload); ok {
			r.PanSteps(p.DX, p.DY)
		}
	case event.EventKeyZoom:
		if p, ok := ev.Payload.(*event.ZoomPayload); ok {
			r.ZoomAtCenter(p.In)
		}
	}
}

// EventTypes implements event.Handler
func (r *Router) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerDown,
		event.EventPointerMove,
		event.EventPointerUp,
		event.EventWheel,
		event.EventTouchStart,
		event.EventTouchMove,
		event.EventTouchEnd,
		event.EventKeyPan,
		event.EventKeyZoom,
	}
}
