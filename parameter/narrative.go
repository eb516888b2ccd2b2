package parameter

import "time"

// Narrative defaults, overridable by configuration and the narrative script
const (
	// RevealThreshold is the camera scale below which the heart reveal latches
	RevealThreshold = 0.3

	// RevealAnimation is how long reveal particles take to assemble
	RevealAnimation = 1 * time.Second

	// RevealHold is the delay after the reveal animation before Message
	RevealHold = 2 * time.Second

	// MessageExplosionDelay is when the explosion cue fires inside Message
	MessageExplosionDelay = 3 * time.Second

	// MessageHold is the delay from Message entry to Final
	MessageHold = 4500 * time.Millisecond
)
