package remote

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/engine"
	"github.com/lixenwraith/vi-remote/hud"
)

// Update advances the controller by one frame
// hasFocus=false keeps timers running but skips polling
// FlagPaused holds the freeze window; FlagEditor skips polling
func (c *Controller) Update(hasFocus bool, flags engine.UpdateFlags) {
	if c.state == StateUninitialized || c.state == StateShuttingDown {
		return
	}
	dt := c.frameDelta()

	// Housekeeping
	c.checkConnection()
	c.refreshEnabled()

	// Timers
	// Rumble runs through pauses so the motor never buzzes for a whole pause
	if !flags.Has(engine.FlagPaused) {
		c.freeze.tick(dt)
	}
	if c.rumble.tick(dt) {
		c.sendStop()
	}

	// Input
	if c.enabled && hasFocus && !flags.Has(engine.FlagEditor) {
		c.poll()
	}

	c.validateLock()
	c.publish()
}

// frameDelta measures from the previous Update, clamped to MaxFrameDelta
func (c *Controller) frameDelta() time.Duration {
	now := c.clock.Now()
	dt := now.Sub(c.lastTick)
	c.lastTick = now
	if dt < 0 {
		return 0
	}
	if dt > c.cfg.MaxFrameDelta {
		return c.cfg.MaxFrameDelta
	}
	return dt
}

func (c *Controller) poll() {
	st, err := c.dev.Poll()
	c.statPolls.Add(1)
	if err != nil {
		c.statPollErrors.Add(1)
		c.SetErrorLevel(ErrorLevelPollFailed)
		c.log.Debug("poll failed", zap.Error(err))
		return
	}
	c.ClearErrorLevel(ErrorLevelPollFailed)

	c.tracking = st.Tracking
	c.pointer = st.Pointer
	if st.Tracking {
		c.ClearErrorLevel(ErrorLevelTrackingLost)
	} else {
		c.SetErrorLevel(ErrorLevelTrackingLost)
	}

	c.trackLock(st)
}

func (c *Controller) publish() {
	c.statConnected.Store(c.connected)
	c.statEnabled.Store(c.enabled)
	c.statRumbleLeft.Set(c.rumble.remaining.Seconds())
}

// UpdateHUD hands the current snapshot to h; it never changes controller state
func (c *Controller) UpdateHUD(h hud.HUD) {
	if h == nil {
		return
	}
	h.DrawRemote(c.Snapshot())
}

// Snapshot returns a read-only copy of the state the HUD displays
func (c *Controller) Snapshot() hud.Snapshot {
	snap := hud.Snapshot{
		State:       c.state.String(),
		Session:     c.session,
		Enabled:     c.enabled,
		Connected:   c.connected,
		Frozen:      c.IsMovementFrozen(),
		Rumbling:    c.rumble.active,
		ErrorLevels: c.errors.Levels(),
		Tracking:    c.enabled && c.tracking,
		Pointer:     c.pointer,
	}
	if snap.Frozen {
		snap.FreezeRemaining = c.freeze.remaining
	}
	if snap.Rumbling {
		snap.RumbleRemaining = c.rumble.remaining
	}
	snap.LockTarget, snap.Locked = c.GetLockedEntity(&snap.LockOffset)
	snap.TopError, snap.HasError = c.errors.Top()
	return snap
}
