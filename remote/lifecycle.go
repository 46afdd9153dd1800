package remote

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/device"
)

// Initialize attaches a device through the prober
// Idempotent while a device is attached; without one it probes again
// A failed probe leaves the controller usable but not enabled
func (c *Controller) Initialize() {
	if c.state != StateUninitialized && c.dev != nil {
		return
	}
	if c.state == StateUninitialized {
		c.state = StateDisabled
		c.lastTick = c.clock.Now()
	}

	if c.dev == nil {
		d, err := c.probe()
		if err != nil {
			c.log.Warn("remote not attached", zap.Error(err))
			c.SetErrorLevel(ErrorLevelNoRemote)
		} else {
			c.attach(d)
		}
	}

	c.checkConnection()
	c.refreshEnabled()
	c.publish()
	c.log.Info("initialized",
		zap.Stringer("state", c.state),
		zap.String("session", c.session),
	)
}

func (c *Controller) probe() (device.Device, error) {
	if c.prober == nil {
		return nil, device.ErrNoDevice
	}
	d, err := c.prober.Probe()
	if err != nil {
		return nil, fmt.Errorf("failed to probe remote: %w", err)
	}
	if d == nil {
		return nil, device.ErrNoDevice
	}
	return d, nil
}

// Shutdown stops rumble, drops the device and every derived state
// Safe without Initialize and safe to repeat
func (c *Controller) Shutdown() {
	if c.state == StateUninitialized && c.dev == nil {
		c.errors.Clear(ClearAllErrorLevels)
		return
	}
	c.state = StateShuttingDown
	c.refreshEnabled()
	c.clearTransient("shutdown")

	c.dev = nil
	c.stopPending = false
	c.session = ""
	c.connected = false
	c.errors.Clear(ClearAllErrorLevels)
	c.state = StateUninitialized
	c.publish()
	c.log.Info("shutdown")
}

// SetMasterEnabled records the user's master switch
func (c *Controller) SetMasterEnabled(on bool) {
	if c.requested != on {
		c.log.Info("master switch", zap.Bool("on", on))
	}
	c.requested = on
	c.refreshEnabled()
	c.statEnabled.Store(c.enabled)
}

// IsMasterEnabled reports the effective enable: requested, initialized and connected
func (c *Controller) IsMasterEnabled() bool {
	return c.enabled
}

// EditorResetGame drops transient gameplay state when the editor starts or stops the game
// The device stays attached and is not probed again
func (c *Controller) EditorResetGame(start bool) {
	c.clearTransient("editor reset")
	if start && c.state != StateUninitialized {
		// First game frame measures from here, not from the last editor frame
		c.lastTick = c.clock.Now()
	}
	c.log.Info("editor reset", zap.Bool("start", start))
}

// SetRemote replaces the attached device; nil detaches
// Rumble on the previous device is stopped before the swap
func (c *Controller) SetRemote(d device.Device) {
	if d == c.dev {
		return
	}
	c.clearTransient("remote replaced")

	if d == nil {
		c.log.Info("remote detached", zap.String("session", c.session))
		c.dev = nil
		c.stopPending = false
		c.session = ""
		if c.state != StateUninitialized {
			c.SetErrorLevel(ErrorLevelNoRemote)
		}
	} else {
		c.attach(d)
	}

	c.checkConnection()
	c.refreshEnabled()
	c.publish()
}

// GetRemote returns the attached device or nil
func (c *Controller) GetRemote() device.Device {
	return c.dev
}

func (c *Controller) attach(d device.Device) {
	c.dev = d
	c.stopPending = false
	c.session = uuid.NewString()
	// Connection edge is detected against the new device
	c.connected = false
	c.ClearErrorLevel(ErrorLevelNoRemote)
	c.ClearErrorLevel(ErrorLevelDisconnected)
	c.log.Info("remote attached", zap.String("session", c.session))
}

// checkConnection samples the link and maintains the disconnect error level
func (c *Controller) checkConnection() {
	if c.dev == nil {
		c.connected = false
		c.ClearErrorLevel(ErrorLevelDisconnected)
		return
	}

	connected := c.dev.IsConnected()
	if connected == c.connected {
		if !connected {
			c.SetErrorLevel(ErrorLevelDisconnected)
		}
		return
	}
	c.connected = connected
	if connected {
		if c.stopPending {
			c.sendStop()
		}
		c.ClearErrorLevel(ErrorLevelDisconnected)
		c.log.Info("remote connected", zap.String("session", c.session))
	} else {
		c.SetErrorLevel(ErrorLevelDisconnected)
		c.log.Warn("remote lost", zap.String("session", c.session))
	}
}

// refreshEnabled recomputes the effective enable and clears transient state on the falling edge
func (c *Controller) refreshEnabled() {
	live := c.state == StateDisabled || c.state == StateEnabled
	want := c.requested && live && c.connected

	if c.enabled && !want {
		c.clearTransient("disabled")
	}
	if c.enabled != want {
		c.log.Info("remote enable changed", zap.Bool("enabled", want))
	}
	c.enabled = want

	if live {
		if want {
			c.state = StateEnabled
		} else {
			c.state = StateDisabled
		}
	}
}

// clearTransient drops freeze, lock, rumble and per-poll diagnostics
func (c *Controller) clearTransient(reason string) {
	c.freeze.reset()
	c.releaseLock(reason)
	c.stopRumble()
	c.tracking = false
	c.ClearErrorLevel(ErrorLevelTrackingLost)
	c.ClearErrorLevel(ErrorLevelPollFailed)
}
