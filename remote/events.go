package remote

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/engine"
	"github.com/lixenwraith/vi-remote/event"
)

// EventTypes implements event.Handler
func (c *Controller) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWeaponShoot,
		event.EventFreezeMovement,
		event.EventRumble,
		event.EventEditorReset,
		event.EventMasterToggle,
		event.EventErrorLevel,
	}
}

// HandleEvent implements event.Handler
// flags are the frame's update flags; weapon fire is ignored in editor frames
func (c *Controller) HandleEvent(flags engine.UpdateFlags, ev event.GameEvent) {
	switch ev.Type {
	case event.EventWeaponShoot:
		if flags.Has(engine.FlagEditor) {
			return
		}
		if p, ok := ev.Payload.(*event.WeaponShootPayload); ok {
			c.OnWeaponShoot(p.ShooterID)
		}

	case event.EventFreezeMovement:
		c.FreezeMovement()

	case event.EventRumble:
		if p, ok := ev.Payload.(*event.RumblePayload); ok {
			c.Rumble(p.Duration)
		}

	case event.EventEditorReset:
		if p, ok := ev.Payload.(*event.EditorResetPayload); ok {
			c.EditorResetGame(p.Start)
		}

	case event.EventMasterToggle:
		if p, ok := ev.Payload.(*event.MasterTogglePayload); ok {
			c.SetMasterEnabled(p.On)
		}

	case event.EventErrorLevel:
		if p, ok := ev.Payload.(*event.ErrorLevelPayload); ok {
			if p.Clear {
				c.ClearErrorLevel(p.Level)
			} else {
				c.SetErrorLevel(p.Level)
			}
		}

	default:
		c.log.Debug("unhandled event", zap.Stringer("type", ev.Type))
	}
}
