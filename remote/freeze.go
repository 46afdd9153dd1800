package remote

import (
	"time"

	"go.uber.org/zap"
)

// freezeGate is a single restartable suppression window
// frozen is derived from remaining, so frozen == (remaining > 0) always holds
type freezeGate struct {
	window    time.Duration
	remaining time.Duration
}

// start restarts the window; an active window is replaced, never stacked
func (g *freezeGate) start() {
	g.remaining = g.window
}

func (g *freezeGate) tick(dt time.Duration) {
	g.remaining -= dt
	if g.remaining < 0 {
		g.remaining = 0
	}
}

func (g *freezeGate) frozen() bool {
	return g.remaining > 0
}

func (g *freezeGate) reset() {
	g.remaining = 0
}

// FreezeMovement suppresses movement-derived input for the freeze window
// Called after throw-like gestures to avoid camera snaps
func (c *Controller) FreezeMovement() {
	if !c.enabled {
		return
	}
	c.freeze.start()
	c.statFreezes.Add(1)
	c.log.Debug("movement frozen", zap.Duration("window", c.freeze.window))
}

// IsMovementFrozen reports whether the freeze window is still open
func (c *Controller) IsMovementFrozen() bool {
	return c.enabled && c.freeze.frozen()
}

// FreezeRemaining returns the time left in the freeze window
func (c *Controller) FreezeRemaining() time.Duration {
	return c.freeze.remaining
}
