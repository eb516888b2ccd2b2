package camera

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-6

func newTestCamera() *Camera {
	return New(400, 300, 1, Limits{MinScale: 0.1, MaxScale: 3})
}

func TestToScreenScalesAroundPan(t *testing.T) {
	c := New(100, 50, 2, DefaultLimits())

	tests := []struct {
		wx, wy, sx, sy float64
	}{
		{100, 50, 100, 50}, // pan point is fixed
		{110, 50, 120, 50},
		{100, 40, 100, 30},
		{0, 0, -100, -50},
	}
	for _, tc := range tests {
		sx, sy := c.ToScreen(tc.wx, tc.wy)
		if math.Abs(sx-tc.sx) > eps || math.Abs(sy-tc.sy) > eps {
			t.Errorf("ToScreen(%v,%v) = (%v,%v), want (%v,%v)", tc.wx, tc.wy, sx, sy, tc.sx, tc.sy)
		}
		wx, wy := c.WorldAt(sx, sy)
		if math.Abs(wx-tc.wx) > eps || math.Abs(wy-tc.wy) > eps {
			t.Errorf("WorldAt(ToScreen(%v,%v)) = (%v,%v)", tc.wx, tc.wy, wx, wy)
		}
	}
}

func TestScaleAlwaysClamped(t *testing.T) {
	c := newTestCamera()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		factor := math.Exp(rng.NormFloat64())
		c.SetTargetScale(factor, rng.Float64()*800, rng.Float64()*600)
		c.Tick(0.3)

		ts := c.Target().Scale
		if ts < 0.1 || ts > 3 {
			t.Fatalf("step %d: target scale %v escaped [0.1, 3]", i, ts)
		}
		if s := c.Scale(); s < 0.1 || s > 3 {
			t.Fatalf("step %d: current scale %v escaped [0.1, 3]", i, s)
		}
	}
}

func TestSetTargetScaleRejectsDegenerateFactors(t *testing.T) {
	c := newTestCamera()
	before := c.Target()

	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		c.SetTargetScale(f, 10, 10)
	}
	if c.Target() != before {
		t.Errorf("Degenerate factors changed target: %+v -> %+v", before, c.Target())
	}
}

func TestSmoothingConvergesMonotonically(t *testing.T) {
	for _, damping := range []float64{0.05, 0.1, 0.5, 0.95} {
		c := newTestCamera()
		c.SetTargetPan(-250, 130)
		c.SetTargetScale(0.4, 200, 200)
		target := c.Target()

		prevPan := math.Inf(1)
		prevScale := math.Inf(1)
		for i := 0; i < 2000 && !c.Converged(0); i++ {
			c.Tick(damping)
			px, py := c.Pan()
			dPan := math.Hypot(target.PanX-px, target.PanY-py)
			dScale := math.Abs(target.Scale - c.Scale())

			if dPan > 0 && dPan >= prevPan {
				t.Fatalf("damping %v step %d: pan distance did not decrease (%v -> %v)", damping, i, prevPan, dPan)
			}
			if dScale > 0 && dScale >= prevScale {
				t.Fatalf("damping %v step %d: scale distance did not decrease (%v -> %v)", damping, i, prevScale, dScale)
			}
			prevPan, prevScale = dPan, dScale
		}
		if !c.Converged(0) {
			t.Errorf("damping %v: camera never reached target exactly", damping)
		}
	}
}

func TestTickIgnoresInvalidDamping(t *testing.T) {
	c := newTestCamera()
	c.SetTargetPan(10, 10)

	c.Tick(0)
	c.Tick(-1)
	if x, y := c.Pan(); x != 400 || y != 300 {
		t.Errorf("Non-positive damping moved camera to (%v,%v)", x, y)
	}

	c.Tick(1)
	if !c.Converged(0) {
		t.Error("Damping of 1 should snap to target")
	}
}

func TestZoomKeepsFocalPointFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		c := New(rng.Float64()*800, rng.Float64()*600, 0.2+rng.Float64()*2, DefaultLimits())
		fx, fy := rng.Float64()*800, rng.Float64()*600
		factor := 0.5 + rng.Float64()

		wx, wy := c.WorldAt(fx, fy)
		c.SetTargetScale(factor, fx, fy)
		if math.Abs(1-c.Target().Scale) < 1e-3 {
			continue // near identity the solved pan is huge and precision suffers
		}
		for j := 0; j < 5000 && !c.Converged(0); j++ {
			c.Tick(0.1)
		}

		sx, sy := c.ToScreen(wx, wy)
		if math.Abs(sx-fx) > 1e-4 || math.Abs(sy-fy) > 1e-4 {
			t.Fatalf("case %d: focal (%v,%v) drifted to (%v,%v) after factor %v", i, fx, fy, sx, sy, factor)
		}
	}
}

func TestZoomFromRestMovesPanToFocal(t *testing.T) {
	// At scale 1 the transform is the identity, so the focal world point equals the focal screen point
	c := newTestCamera()
	c.SetTargetScale(1.05, 120, 80)

	tgt := c.Target()
	if math.Abs(tgt.PanX-120) > eps || math.Abs(tgt.PanY-80) > eps {
		t.Errorf("Expected target pan at focal point (120,80), got (%v,%v)", tgt.PanX, tgt.PanY)
	}
	if math.Abs(tgt.Scale-1.05) > eps {
		t.Errorf("Expected target scale 1.05, got %v", tgt.Scale)
	}
}

func TestZoomToIdentityKeepsPan(t *testing.T) {
	c := New(100, 100, 2, DefaultLimits())
	c.SetTargetScale(0.5, 300, 300)

	tgt := c.Target()
	if tgt.Scale != 1 {
		t.Fatalf("Expected target scale 1, got %v", tgt.Scale)
	}
	if tgt.PanX != 100 || tgt.PanY != 100 {
		t.Errorf("Expected pan untouched at identity scale, got (%v,%v)", tgt.PanX, tgt.PanY)
	}
}

func TestPanDeltaAccumulatesUnbounded(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 100; i++ {
		c.SetTargetPan(1e4, -1e4)
	}
	tgt := c.Target()
	if tgt.PanX != 400+1e6 || tgt.PanY != 300-1e6 {
		t.Errorf("Unexpected target pan (%v,%v)", tgt.PanX, tgt.PanY)
	}
}

func TestSetLimitsReclamps(t *testing.T) {
	c := newTestCamera()
	c.SetTargetScale(3, 0, 0)
	c.Snap()

	if ok := c.SetLimits(Limits{MinScale: 0.2, MaxScale: 2}); !ok {
		t.Fatal("Expected valid limits to apply")
	}
	if c.Scale() != 2 || c.Target().Scale != 2 {
		t.Errorf("Expected scale re-clamped to 2, got current %v target %v", c.Scale(), c.Target().Scale)
	}

	for _, bad := range []Limits{{0, 3}, {-1, 3}, {2, 1}, {1, 1}, {0.1, math.Inf(1)}} {
		if c.SetLimits(bad) {
			t.Errorf("Limits %+v should be rejected", bad)
		}
	}
}

func TestNewFallsBackOnInvalidLimits(t *testing.T) {
	c := New(0, 0, 50, Limits{MinScale: 0, MaxScale: 0})
	if c.Limits() != DefaultLimits() {
		t.Errorf("Expected default limits, got %+v", c.Limits())
	}
	if c.Scale() != DefaultLimits().MaxScale {
		t.Errorf("Expected initial scale clamped to %v, got %v", DefaultLimits().MaxScale, c.Scale())
	}
}
