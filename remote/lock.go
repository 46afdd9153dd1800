package remote

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/scene"
	"github.com/lixenwraith/vi-remote/vmath"
)

// lockTracker holds at most one lock target
// offset is meaningful only while held
type lockTracker struct {
	target scene.Entity
	offset vmath.Vec3F
	held   bool
}

// set replaces the lock; returns true when the target changed
func (l *lockTracker) set(e scene.Entity, offset vmath.Vec3F) bool {
	changed := !l.held || l.target != e
	l.target = e
	l.offset = offset
	l.held = true
	return changed
}

func (l *lockTracker) clear() bool {
	had := l.held
	*l = lockTracker{}
	return had
}

// GetLockedEntity returns the lock target and writes its offset
// Without a live lock it returns false and leaves offset untouched
func (c *Controller) GetLockedEntity(offset *vmath.Vec3F) (scene.Entity, bool) {
	if !c.enabled || !c.lock.held {
		return scene.Entity{}, false
	}
	// Handles may outlive their entity between Updates
	if c.scene == nil || !c.scene.Alive(c.lock.target) {
		return scene.Entity{}, false
	}
	if offset != nil {
		*offset = c.lock.offset
	}
	return c.lock.target, true
}

// trackLock applies one polled snapshot to the lock
func (c *Controller) trackLock(st device.State) {
	if !st.Held(device.ButtonLock) {
		c.releaseLock("trigger released")
		return
	}
	if !st.Tracking {
		c.releaseLock("tracking lost")
		return
	}
	if c.scene == nil {
		return
	}

	// Pointing at empty space keeps the current lock
	e, offset, ok := c.scene.Pick(st.Pointer)
	if !ok {
		return
	}
	if c.lock.set(e, offset) {
		c.statLocks.Add(1)
		c.log.Debug("lock acquired", zap.Uint64("entity", uint64(e.ID())))
	}
}

func (c *Controller) releaseLock(reason string) {
	if c.lock.clear() {
		c.log.Debug("lock released", zap.String("reason", reason))
	}
}

// validateLock drops a lock whose entity died since it was acquired
func (c *Controller) validateLock() {
	if !c.lock.held {
		return
	}
	if c.scene == nil || !c.scene.Alive(c.lock.target) {
		c.releaseLock("target gone")
	}
}
