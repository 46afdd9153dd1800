package remote

import (
	"time"

	"go.uber.org/zap"
)

// rumbleScheduler tracks one pulse; longer requests extend it, shorter ones never cut it
type rumbleScheduler struct {
	max       time.Duration
	remaining time.Duration
	active    bool
}

// request returns true when the motor must be switched on
func (r *rumbleScheduler) request(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	if r.max > 0 && d > r.max {
		d = r.max
	}
	if d > r.remaining {
		r.remaining = d
	}
	if r.active {
		return false
	}
	r.active = true
	return true
}

// tick returns true when the pulse ended this frame and the motor must stop
func (r *rumbleScheduler) tick(dt time.Duration) bool {
	if !r.active {
		return false
	}
	r.remaining -= dt
	if r.remaining > 0 {
		return false
	}
	r.remaining = 0
	r.active = false
	return true
}

// reset returns true if a pulse was cut
func (r *rumbleScheduler) reset() bool {
	was := r.active
	r.remaining = 0
	r.active = false
	return was
}

// Rumble requests a haptic pulse of duration d
// Ignored before Initialize, without a device, or while disabled
func (c *Controller) Rumble(d time.Duration) {
	if !c.enabled || c.dev == nil {
		return
	}
	if !c.rumble.request(d) {
		return
	}
	c.statRumbles.Add(1)
	if err := c.dev.SetRumble(true); err != nil {
		c.rumble.reset()
		c.log.Debug("rumble start failed", zap.Error(err))
	}
}

// sendStop silences the device; a failed stop stays pending until it lands
func (c *Controller) sendStop() {
	if c.dev == nil {
		c.stopPending = false
		return
	}
	if err := c.dev.SetRumble(false); err != nil {
		c.stopPending = true
		c.log.Debug("rumble stop failed", zap.Error(err))
		return
	}
	c.stopPending = false
}

// OnWeaponShoot pulses the remote when the local actor fires
func (c *Controller) OnWeaponShoot(shooterID uint32) {
	if c.actors == nil || !c.actors.IsLocal(shooterID) {
		return
	}
	c.Rumble(c.cfg.WeaponRumble)
}

// RumbleRemaining returns the time left in the current pulse
func (c *Controller) RumbleRemaining() time.Duration {
	return c.rumble.remaining
}

// stopRumble cuts any pulse and silences the current device
func (c *Controller) stopRumble() {
	if !c.rumble.reset() && !c.stopPending {
		return
	}
	c.sendStop()
}
