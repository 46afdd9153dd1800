package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/config"
	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/engine"
	"github.com/lixenwraith/vi-remote/haptic"
	"github.com/lixenwraith/vi-remote/logger"
	"github.com/lixenwraith/vi-remote/parameter"
	"github.com/lixenwraith/vi-remote/remote"
	"github.com/lixenwraith/vi-remote/scene"
	"github.com/lixenwraith/vi-remote/service"
	"github.com/lixenwraith/vi-remote/status"
	"github.com/lixenwraith/vi-remote/vmath"
)

var (
	configFlag = flag.String("config", "", "YAML config file, compiled defaults when empty")
	logFlag    = flag.String("log", "", "log file, overrides config")
	noAudio    = flag.Bool("no-audio", false, "keep the rumble motor silent")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *logFlag != "" {
		cfg.Logging.File = *logFlag
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}

	lg, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mREMOTE SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sb, hub, err := build(cfg, screen, lg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	sb.run()

	hub.StopAll()
	screen.Fini()
}

func loadConfig() (*config.Config, error) {
	if *configFlag == "" {
		return config.Default(), nil
	}
	return config.Load(*configFlag)
}

// build is the composition root: every collaborator is constructed here and injected
func build(cfg *config.Config, screen tcell.Screen, lg *zap.Logger) (*sandbox, *service.Hub, error) {
	reg := status.NewRegistry()

	motor := haptic.NewMotor(parameter.BuzzSampleRate, parameter.BuzzBuffer, cfg.Audio.Frequency, cfg.Audio.Volume)
	sim := device.NewSimulated(motor)

	world := scene.NewWorld(scene.Camera{FOV: parameter.PointerFOV}, cfg.Sandbox.PickMaxDistance)
	for _, t := range cfg.Sandbox.Targets {
		world.Spawn(t.Name, vmath.Vec3F{X: t.X, Y: t.Y, Z: t.Z}, t.Radius)
	}

	ctrl := remote.New(remote.Config{
		FreezeWindow:   cfg.Remote.FreezeWindow,
		WeaponRumble:   cfg.Remote.WeaponRumble,
		MaxRumble:      cfg.Remote.MaxRumble,
		MaxFrameDelta:  cfg.Remote.MaxFrameDelta,
		EnabledAtStart: cfg.Remote.EnabledAtStart,
	}, remote.Deps{
		Prober: device.Static(sim),
		Scene:  world,
		Actors: remote.LocalActor(cfg.Remote.LocalActor),
		Clock:  engine.NewTimeProvider(),
		Status: reg,
		Log:    lg,
	})

	hub := service.NewHub(lg)
	if err := hub.Register(haptic.NewService(motor, cfg.Audio.Enabled, lg.Named("haptic"))); err != nil {
		return nil, nil, err
	}
	if err := hub.Register(remote.NewService(ctrl, "haptic")); err != nil {
		return nil, nil, err
	}
	if err := hub.InitAll(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return nil, nil, fmt.Errorf("failed to start services: %w", err)
	}

	return newSandbox(screen, ctrl, sim, world, reg, cfg.Remote.LocalActor, lg), hub, nil
}
