package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/engine"
	"github.com/lixenwraith/vi-remote/event"
	"github.com/lixenwraith/vi-remote/hud"
	"github.com/lixenwraith/vi-remote/parameter"
	"github.com/lixenwraith/vi-remote/remote"
	"github.com/lixenwraith/vi-remote/scene"
	"github.com/lixenwraith/vi-remote/status"
	"github.com/lixenwraith/vi-remote/vmath"
)

const helpText = "arrows/mouse aim  b lock  a A  t tracking  c link  f freeze  s/S shoot local/remote  r rumble  m master  e editor  p pause  x kill lock  n spawn  q quit"

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(12, 12, 18))
	styleHelp       = styleBackground.Foreground(tcell.NewRGBColor(110, 110, 130))
	styleStats      = styleBackground.Foreground(tcell.NewRGBColor(150, 150, 170))
	styleTarget     = styleBackground.Foreground(tcell.NewRGBColor(200, 200, 210))
	styleLocked     = styleBackground.Foreground(tcell.NewRGBColor(255, 220, 90)).Bold(true)
)

// sandbox plays the game shell: it owns the frame loop and the event queue
type sandbox struct {
	screen tcell.Screen
	ctrl   *remote.Controller
	sim    *device.Simulated
	world  *scene.World
	status *status.Registry
	log    *zap.Logger

	queue    *event.EventQueue
	router   *event.Router[engine.UpdateFlags]
	renderer *hud.Renderer

	localActor uint32
	hasFocus   bool
	master     bool
	paused     bool
	editor     bool
	spawned    int
}

func newSandbox(screen tcell.Screen, ctrl *remote.Controller, sim *device.Simulated, world *scene.World,
	reg *status.Registry, localActor uint32, lg *zap.Logger) *sandbox {

	queue := event.NewEventQueue(event.DefaultQueueSize)
	router := event.NewRouter[engine.UpdateFlags](queue)
	router.Register(ctrl)

	renderer := hud.NewRenderer(screen)
	renderer.ErrorNames = remote.ErrorLevelNames
	renderer.TargetName = func(snap hud.Snapshot) string {
		return world.Name(snap.LockTarget)
	}

	return &sandbox{
		screen:     screen,
		ctrl:       ctrl,
		sim:        sim,
		world:      world,
		status:     reg,
		log:        lg,
		queue:      queue,
		router:     router,
		renderer:   renderer,
		localActor: localActor,
		hasFocus:   true,
		master:     ctrl.Config().EnabledAtStart,
	}
}

func (s *sandbox) flags() engine.UpdateFlags {
	var f engine.UpdateFlags
	if s.paused {
		f |= engine.FlagPaused
	}
	if s.editor {
		f |= engine.FlagEditor
	}
	return f
}

func (s *sandbox) run() {
	s.screen.EnableMouse()
	s.screen.EnableFocus()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.handleInput(ev) {
				return
			}

		case <-ticker.C:
			flags := s.flags()
			s.router.DispatchAll(flags)
			s.ctrl.Update(s.hasFocus, flags)
			s.draw()
		}
	}
}

// handleInput returns false when the user asked to quit
func (s *sandbox) handleInput(ev tcell.Event) bool {
	w, h := s.screen.Size()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && s.handleShellKey(ev.Rune()) {
			return ev.Rune() != 'q'
		}
		s.sim.HandleEvent(ev, w, h-1)

	case *tcell.EventMouse:
		s.sim.HandleEvent(ev, w, h-1)

	case *tcell.EventFocus:
		s.hasFocus = ev.Focused
		s.log.Debug("focus changed", zap.Bool("focused", ev.Focused))

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// handleShellKey covers keys the game would raise as gameplay events
func (s *sandbox) handleShellKey(r rune) bool {
	switch r {
	case 'q':
	case 'f':
		s.queue.Push(event.GameEvent{Type: event.EventFreezeMovement})
	case 's':
		s.queue.Push(event.GameEvent{Type: event.EventWeaponShoot, Payload: &event.WeaponShootPayload{ShooterID: s.localActor}})
	case 'S':
		s.queue.Push(event.GameEvent{Type: event.EventWeaponShoot, Payload: &event.WeaponShootPayload{ShooterID: parameter.ShooterRemote}})
	case 'r':
		s.queue.Push(event.GameEvent{Type: event.EventRumble, Payload: &event.RumblePayload{Duration: time.Second}})
	case 'm':
		s.master = !s.master
		s.queue.Push(event.GameEvent{Type: event.EventMasterToggle, Payload: &event.MasterTogglePayload{On: s.master}})
	case 'e':
		// Leaving the editor starts the game, entering it stops the game
		s.editor = !s.editor
		s.queue.Push(event.GameEvent{Type: event.EventEditorReset, Payload: &event.EditorResetPayload{Start: !s.editor}})
	case 'p':
		s.paused = !s.paused
	case 'x':
		if e, ok := s.ctrl.GetLockedEntity(nil); ok {
			s.log.Info("target destroyed", zap.String("name", s.world.Name(e)))
			s.world.Despawn(e)
		}
	case 'n':
		s.spawnDrone()
	default:
		return false
	}
	return true
}

func (s *sandbox) spawnDrone() {
	s.spawned++
	pos := vmath.Vec3F{
		X: rand.Float64()*16 - 8,
		Y: rand.Float64()*8 - 4,
		Z: 10 + rand.Float64()*20,
	}
	s.world.Spawn(fmt.Sprintf("drone-%d", s.spawned), pos, parameter.PickRadius)
}

func (s *sandbox) draw() {
	s.screen.Fill(' ', styleBackground)
	w, h := s.screen.Size()
	if h < 3 {
		s.screen.Show()
		return
	}

	locked, hasLock := s.ctrl.GetLockedEntity(nil)
	cam := s.world.Camera()
	s.world.Each(func(e scene.Entity, pos vmath.Vec3F, target scene.Target) {
		p, ok := cam.Project(pos)
		if !ok {
			return
		}
		x, y := hud.PointerCell(p.X, p.Y, w, h-1)
		style := styleTarget
		glyph := 'o'
		if hasLock && e == locked {
			style = styleLocked
			glyph = '@'
		}
		s.screen.SetContent(x, y, glyph, nil, style)
		s.text(x+1, y, target.Name, style)
	})

	s.text(0, 0, helpText, styleHelp)
	for i, line := range s.status.Lines() {
		if i+1 >= h-1 {
			break
		}
		s.text(w-len(line)-1, i+1, line, styleStats)
	}
	s.text(0, 1, fmt.Sprintf("flags=%s focus=%v session=%s", s.flags(), s.hasFocus, s.ctrl.Session()), styleStats)

	s.ctrl.UpdateHUD(s.renderer)
	s.screen.Show()
}

func (s *sandbox) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
