package parameter

import (
	"time"
)

// Sandbox Loop
const (
	// FrameInterval is the sandbox render/update cadence
	FrameInterval = 16 * time.Millisecond

	// PointerStep is the pointer travel per arrow key press
	PointerStep = 0.05

	// ShooterLocal and ShooterRemote are the actor ids the sandbox fires weapons as
	ShooterLocal  uint32 = 1
	ShooterRemote uint32 = 2
)

// Haptic Buzz
const (
	// BuzzSampleRate is the speaker rate used by the haptic buzz motor
	BuzzSampleRate = 44100

	// BuzzFrequency is the tone of the emulated motor in Hz
	BuzzFrequency = 55.0

	// BuzzVolume is the linear gain applied to the buzz waveform
	BuzzVolume = 0.25

	// BuzzBuffer is the speaker buffer length
	BuzzBuffer = 50 * time.Millisecond
)
