// Package remote turns a motion remote into per-frame gameplay input.
//
// The Controller owns the lifecycle and enable state, a register of HUD
// error levels, the movement freeze gate, the entity lock and the rumble
// schedule. It runs entirely on the frame thread: the game shell calls
// Update once per frame and UpdateHUD during the render pass. All timers
// advance by frame delta; nothing blocks and nothing is fatal. A missing or
// disconnected device only turns gameplay effects off.
package remote

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/engine"
	"github.com/lixenwraith/vi-remote/hud"
	"github.com/lixenwraith/vi-remote/logger"
	"github.com/lixenwraith/vi-remote/parameter"
	"github.com/lixenwraith/vi-remote/scene"
	"github.com/lixenwraith/vi-remote/status"
	"github.com/lixenwraith/vi-remote/vmath"
)

// Manager is the contract the game shell programs against
type Manager interface {
	Initialize()
	Shutdown()
	Update(hasFocus bool, flags engine.UpdateFlags)
	UpdateHUD(h hud.HUD)
	EditorResetGame(start bool)

	SetMasterEnabled(on bool)
	IsMasterEnabled() bool

	GetLockedEntity(offset *vmath.Vec3F) (scene.Entity, bool)

	FreezeMovement()
	IsMovementFrozen() bool

	SetErrorLevel(level int)
	ClearErrorLevel(level int)

	SetRemote(d device.Device)
	GetRemote() device.Device

	Rumble(d time.Duration)
	OnWeaponShoot(shooterID uint32)
}

// Scene is the entity registry the lock tracker validates against and picks from
type Scene interface {
	Alive(e scene.Entity) bool
	Pick(p device.Pointer) (scene.Entity, vmath.Vec3F, bool)
}

// ActorResolver decides whether a shooter id is the locally controlled actor
type ActorResolver interface {
	IsLocal(shooterID uint32) bool
}

// LocalActor resolves exactly one actor id as local
type LocalActor uint32

func (a LocalActor) IsLocal(shooterID uint32) bool {
	return uint32(a) == shooterID
}

// Config holds the tunables; zero durations select parameter defaults
type Config struct {
	FreezeWindow  time.Duration
	WeaponRumble  time.Duration
	MaxRumble     time.Duration
	MaxFrameDelta time.Duration

	// EnabledAtStart is the master switch before any SetMasterEnabled call
	EnabledAtStart bool
}

// DefaultConfig returns the compiled-in tunables with the master switch off
func DefaultConfig() Config {
	return Config{
		FreezeWindow:  parameter.FreezeWindow,
		WeaponRumble:  parameter.WeaponRumble,
		MaxRumble:     parameter.MaxRumble,
		MaxFrameDelta: parameter.MaxFrameDelta,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FreezeWindow <= 0 {
		c.FreezeWindow = d.FreezeWindow
	}
	if c.WeaponRumble <= 0 {
		c.WeaponRumble = d.WeaponRumble
	}
	if c.MaxRumble <= 0 {
		c.MaxRumble = d.MaxRumble
	}
	if c.MaxFrameDelta <= 0 {
		c.MaxFrameDelta = d.MaxFrameDelta
	}
	return c
}

// Deps are the collaborators injected by the composition root
// Every field is optional; a nil Prober means devices arrive only through SetRemote
type Deps struct {
	Prober device.Prober
	Scene  Scene
	Actors ActorResolver
	Clock  engine.TimeSource
	Status *status.Registry
	Log    *zap.Logger
}

// State is the orchestrator's lifecycle position
type State uint8

const (
	StateUninitialized State = iota
	StateDisabled
	StateEnabled
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDisabled:
		return "disabled"
	case StateEnabled:
		return "enabled"
	case StateShuttingDown:
		return "shutting_down"
	default:
		return "unknown"
	}
}

// Controller is the production Manager
type Controller struct {
	cfg    Config
	prober device.Prober
	scene  Scene
	actors ActorResolver
	clock  engine.TimeSource
	log    *zap.Logger

	state     State
	requested bool // master switch as last set by the shell
	enabled   bool // requested, initialized, and a connected device attached
	connected bool

	dev     device.Device
	session string

	errors *ErrorRegister
	freeze freezeGate
	lock   lockTracker
	rumble rumbleScheduler

	// stopPending is set when a rumble stop did not reach the device
	stopPending bool

	lastTick time.Time
	tracking bool
	pointer  device.Pointer

	// Cached metric pointers
	statPolls      *atomic.Int64
	statPollErrors *atomic.Int64
	statLocks      *atomic.Int64
	statFreezes    *atomic.Int64
	statRumbles    *atomic.Int64
	statConnected  *atomic.Bool
	statEnabled    *atomic.Bool
	statRumbleLeft *status.AtomicFloat
}

var _ Manager = (*Controller)(nil)

// New creates an uninitialized controller
func New(cfg Config, deps Deps) *Controller {
	cfg = cfg.withDefaults()

	if deps.Clock == nil {
		deps.Clock = engine.NewTimeProvider()
	}
	deps.Log = logger.OrNop(deps.Log)
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}

	return &Controller{
		cfg:       cfg,
		prober:    deps.Prober,
		scene:     deps.Scene,
		actors:    deps.Actors,
		clock:     deps.Clock,
		log:       deps.Log.Named("remote"),
		requested: cfg.EnabledAtStart,
		errors:    NewErrorRegister(nil),
		freeze:    freezeGate{window: cfg.FreezeWindow},
		rumble:    rumbleScheduler{max: cfg.MaxRumble},

		statPolls:      deps.Status.Ints.Get("remote.polls"),
		statPollErrors: deps.Status.Ints.Get("remote.poll_errors"),
		statLocks:      deps.Status.Ints.Get("remote.locks"),
		statFreezes:    deps.Status.Ints.Get("remote.freezes"),
		statRumbles:    deps.Status.Ints.Get("remote.rumbles"),
		statConnected:  deps.Status.Bools.Get("remote.connected"),
		statEnabled:    deps.Status.Bools.Get("remote.enabled"),
		statRumbleLeft: deps.Status.Floats.Get("remote.rumble_remaining"),
	}
}

// State returns the lifecycle position
func (c *Controller) State() State {
	return c.state
}

// Session returns the id assigned to the attached device, empty when none
func (c *Controller) Session() string {
	return c.session
}

// Config returns the effective tunables
func (c *Controller) Config() Config {
	return c.cfg
}
