package hud

import (
	"time"

	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/scene"
	"github.com/lixenwraith/vi-remote/vmath"
)

// HUD receives the remote's per-frame snapshot during the render pass
type HUD interface {
	DrawRemote(snap Snapshot)
}

// Snapshot is a read-only copy of manager state
// Slices are owned by the snapshot; the manager does not retain them
type Snapshot struct {
	State     string
	Session   string
	Enabled   bool
	Connected bool

	Frozen          bool
	FreezeRemaining time.Duration

	Locked     bool
	LockTarget scene.Entity
	LockOffset vmath.Vec3F

	Rumbling        bool
	RumbleRemaining time.Duration

	// ErrorLevels are the asserted levels, ascending
	ErrorLevels []int
	// TopError is the level to display, valid only when HasError is set
	TopError int
	HasError bool

	Tracking bool
	Pointer  device.Pointer
}
