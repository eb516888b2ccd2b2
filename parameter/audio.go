package parameter

import "time"

// Audio synthesis
const (
	// AudioSampleRate is the speaker and generator sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default linear master gain [0,1]
	AudioMasterVolume = 0.5

	// AudioFadeIn and AudioFadeOut shape the master envelope
	AudioFadeIn  = 1500 * time.Millisecond
	AudioFadeOut = 4 * time.Second

	// ChimeDuration is the length of one stage chime
	ChimeDuration = 900 * time.Millisecond

	// ChimeDecay is the exponential decay rate of chime partials (1/sec)
	ChimeDecay = 4.0

	// ShimmerNoteGap spaces the reveal arpeggio notes
	ShimmerNoteGap = 120 * time.Millisecond
)
