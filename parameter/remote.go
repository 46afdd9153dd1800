package parameter

import (
	"time"
)

// Freeze Gate
const (
	// FreezeWindow is how long movement input stays suppressed after a throw-like gesture
	FreezeWindow = 1500 * time.Millisecond
)

// Rumble
const (
	// WeaponRumble is the pulse length issued when the local actor fires
	WeaponRumble = 150 * time.Millisecond

	// MaxRumble caps any single request so a bad caller cannot pin the motor on
	MaxRumble = 5 * time.Second
)

// Frame Timing
const (
	// MaxFrameDelta clamps a single Update step after stalls (debugger, window drag)
	MaxFrameDelta = 1 * time.Second
)

// Targeting
const (
	// PickRadius is the default hit radius for targets registered without one
	PickRadius = 1.0

	// PickMaxDistance limits how far along the aim ray a target can be locked
	PickMaxDistance = 200.0
)

// Pointer Projection
const (
	// PointerFOV is the horizontal half-extent of the aim ray at unit depth
	// Pointer coordinates in [-1,1] map onto [-PointerFOV, PointerFOV]
	PointerFOV = 0.6
)
