package event

// EventType identifies a gameplay event routed to the remote manager
type EventType int

const (
	// EventWeaponShoot signals a weapon discharge by any actor
	// Trigger: weapon systems | Consumer: remote.Controller | Payload: *WeaponShootPayload
	EventWeaponShoot EventType = iota

	// EventFreezeMovement signals a recognized throw-like gesture
	// Trigger: gesture recognizer | Consumer: remote.Controller | Payload: nil
	EventFreezeMovement

	// EventRumble requests a haptic pulse outside the weapon path
	// Trigger: damage, pickups | Consumer: remote.Controller | Payload: *RumblePayload
	EventRumble

	// EventEditorReset signals the editor starting or stopping the game
	// Trigger: editor shell | Consumer: remote.Controller | Payload: *EditorResetPayload
	EventEditorReset

	// EventMasterToggle flips the remote master switch
	// Trigger: options menu, sandbox key | Consumer: remote.Controller | Payload: *MasterTogglePayload
	EventMasterToggle

	// EventErrorLevel asserts or clears a HUD diagnostic
	// Trigger: any subsystem | Consumer: remote.Controller | Payload: *ErrorLevelPayload
	EventErrorLevel
)

var eventTypeNames = [...]string{
	EventWeaponShoot:    "weapon_shoot",
	EventFreezeMovement: "freeze_movement",
	EventRumble:         "rumble",
	EventEditorReset:    "editor_reset",
	EventMasterToggle:   "master_toggle",
	EventErrorLevel:     "error_level",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
}
