package parameter

import "time"

// Frame loop timing
const (
	// FrameRate is the default frames per second of the render loop
	FrameRate = 30

	// MaxFrameDelta caps dt after a stall so particles do not tunnel
	MaxFrameDelta = 100 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Log file location, created only in debug mode
const (
	LogDir      = "logs"
	LogFileName = "starlock.log"
)
