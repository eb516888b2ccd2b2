package parameter

import "time"

// Exploration dust drifting across the universe stage
const (
	DustCount     = 50
	DustSpeedMax  = 1.5 // world pixels per second
	DustSizeMin   = 0.3
	DustSizeRange = 0.9
	DustAlphaMin  = 0.25
	DustAlphaMax  = 0.6
	// DustAreaFactor scatters dust across this multiple of the viewport
	DustAreaFactor = 2.0
)

// Heart reveal
const (
	HeartParticleCount = 50
	HeartRingCount     = 30

	// HeartScreenFraction sizes the heart relative to min(width, height) at reveal time
	HeartScreenFraction = 0.4

	// HeartCurveExtent is the half-width of the parametric heart in curve units (16 sin^3 t)
	HeartCurveExtent = 16.0

	// HeartRingDistMin/Range are ring distances in curve units
	HeartRingDistMin   = 20.0
	HeartRingDistRange = 10.0

	HeartHue       = 0.0
	HeartLightness = 0.70
	HeartSizeMin   = 0.6
	HeartSizeRange = 0.8

	// HeartPulseSpeedMin/Range in radians per second
	HeartPulseSpeedMin   = 3.0
	HeartPulseSpeedRange = 3.0
)

// Message stage explosion
const (
	ExplosionCount      = 30
	ExplosionSpeedMin   = 20.0 // screen pixels per second
	ExplosionSpeedRange = 40.0
	ExplosionHueMin     = 15.0
	ExplosionHueRange   = 60.0
	ExplosionSizeMin    = 0.8
	ExplosionSizeRange  = 1.2
	ExplosionLife       = 2 * time.Second
)

// Final stage backdrop
const (
	FinalStarCount     = 50
	FinalStarSizeMin   = 0.4
	FinalStarSizeRange = 0.8
)
