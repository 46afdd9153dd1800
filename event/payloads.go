package event

import "time"

type WeaponShootPayload struct {
	ShooterID uint32
}

type RumblePayload struct {
	Duration time.Duration
}

type EditorResetPayload struct {
	Start bool
}

type MasterTogglePayload struct {
	On bool
}

// ErrorLevelPayload asserts Level, or clears it when Clear is set
// Clear with Level -1 clears every level
type ErrorLevelPayload struct {
	Level int
	Clear bool
}
