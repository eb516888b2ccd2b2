// Package camera holds the smoothed pan/zoom state defining the world-to-screen transform.
//
// The transform scales world distances around the current pan point:
//
//	screen = (world - pan) * scale + pan
//
// so panned content stays visually stable while zooming. Targets are written by
// input handlers; Tick moves the current state toward the target once per frame.
package camera

import (
	"math"

	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/vmath"
)

// Limits bounds the scale of both current and target state
type Limits struct {
	MinScale float64
	MaxScale float64
}

// DefaultLimits returns the parameter scale range
func DefaultLimits() Limits {
	return Limits{MinScale: parameter.CameraMinScale, MaxScale: parameter.CameraMaxScale}
}

// Valid reports whether the range is usable: strictly positive floor below ceiling
func (l Limits) Valid() bool {
	return l.MinScale > 0 && l.MinScale < l.MaxScale && !math.IsInf(l.MaxScale, 0)
}

// Target is the state the camera converges toward
type Target struct {
	PanX, PanY float64
	Scale      float64
}

// View is an immutable snapshot of the current transform handed to renderers
type View struct {
	PanX, PanY float64
	Scale      float64
}

// ToScreen projects a world point using the snapshot
func (v View) ToScreen(wx, wy float64) (float64, float64) {
	return (wx-v.PanX)*v.Scale + v.PanX, (wy-v.PanY)*v.Scale + v.PanY
}

// WorldAt inverts ToScreen for a screen point
func (v View) WorldAt(sx, sy float64) (float64, float64) {
	return (sx-v.PanX)/v.Scale + v.PanX, (sy-v.PanY)/v.Scale + v.PanY
}

// Camera is the single mutable pan/scale instance
// Not safe for concurrent mutation; owned by the frame loop
type Camera struct {
	panX, panY float64
	scale      float64
	target     Target
	limits     Limits
}

// New creates a camera at rest on the given pan and scale
// Invalid limits fall back to the defaults
func New(panX, panY, scale float64, limits Limits) *Camera {
	if !limits.Valid() {
		limits = DefaultLimits()
	}
	scale = vmath.Clamp(scale, limits.MinScale, limits.MaxScale)
	return &Camera{
		panX:   panX,
		panY:   panY,
		scale:  scale,
		target: Target{PanX: panX, PanY: panY, Scale: scale},
		limits: limits,
	}
}

// Pan returns the current pan point
func (c *Camera) Pan() (float64, float64) {
	return c.panX, c.panY
}

// Scale returns the current smoothed scale
func (c *Camera) Scale() float64 {
	return c.scale
}

// Target returns the target state
func (c *Camera) Target() Target {
	return c.target
}

// Limits returns the active scale range
func (c *Camera) Limits() Limits {
	return c.limits
}

// View returns a snapshot of the current transform
func (c *Camera) View() View {
	return View{PanX: c.panX, PanY: c.panY, Scale: c.scale}
}

// SetLimits replaces the scale range and re-clamps current and target scale
// Invalid ranges are ignored
func (c *Camera) SetLimits(l Limits) bool {
	if !l.Valid() {
		return false
	}
	c.limits = l
	c.scale = c.clampScale(c.scale)
	c.target.Scale = c.clampScale(c.target.Scale)
	return true
}

// SetTargetPan adds a screen-space delta to the target pan
func (c *Camera) SetTargetPan(dx, dy float64) {
	c.target.PanX += dx
	c.target.PanY += dy
}

// SetTargetPanTo replaces the target pan, used by drag gestures anchored at press time
func (c *Camera) SetTargetPanTo(x, y float64) {
	c.target.PanX = x
	c.target.PanY = y
}

// SetTargetScale multiplies target scale by factor, clamps, and solves the target pan so
// the world point under (fx, fy) before the change maps back to (fx, fy) at the new scale.
// Non-positive or non-finite factors are ignored.
func (c *Camera) SetTargetScale(factor, fx, fy float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}

	old := View{PanX: c.target.PanX, PanY: c.target.PanY, Scale: c.target.Scale}
	wx, wy := old.WorldAt(fx, fy)

	newScale := c.clampScale(c.target.Scale * factor)
	c.target.Scale = newScale

	// f = (w - p)*k + p  =>  p = (f - w*k) / (1 - k)
	denom := 1 - newScale
	if math.Abs(denom) < parameter.CameraSingularEpsilon {
		// Identity transform: every pan maps w to w, keep the previous target pan
		return
	}
	c.target.PanX = (fx - wx*newScale) / denom
	c.target.PanY = (fy - wy*newScale) / denom
}

// Tick advances current state toward target by damping in (0,1)
// damping >= 1 snaps to target, damping <= 0 leaves the camera unchanged
func (c *Camera) Tick(damping float64) {
	if !(damping > 0) {
		return
	}
	if damping >= 1 {
		c.Snap()
		return
	}

	c.panX = approach(c.panX, c.target.PanX, damping)
	c.panY = approach(c.panY, c.target.PanY, damping)
	c.scale = c.clampScale(approach(c.scale, c.target.Scale, damping))
}

// Snap jumps the current state onto the target
func (c *Camera) Snap() {
	c.panX = c.target.PanX
	c.panY = c.target.PanY
	c.scale = c.target.Scale
}

// Converged reports whether current is within eps of target on every axis
func (c *Camera) Converged(eps float64) bool {
	return vmath.NearlyEqual(c.panX, c.target.PanX, eps) &&
		vmath.NearlyEqual(c.panY, c.target.PanY, eps) &&
		vmath.NearlyEqual(c.scale, c.target.Scale, eps)
}

// ToScreen projects a world point with the current state
func (c *Camera) ToScreen(wx, wy float64) (float64, float64) {
	return c.View().ToScreen(wx, wy)
}

// WorldAt returns the world point under a screen point with the current state
func (c *Camera) WorldAt(sx, sy float64) (float64, float64) {
	return c.View().WorldAt(sx, sy)
}

func (c *Camera) clampScale(s float64) float64 {
	return vmath.Clamp(s, c.limits.MinScale, c.limits.MaxScale)
}

// approach moves cur toward target exponentially, snapping once the residual is negligible
func approach(cur, target, damping float64) float64 {
	next := cur + (target-cur)*damping
	if math.Abs(target-next) < parameter.CameraSnapEpsilon {
		return target
	}
	return next
}
