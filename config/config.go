package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-remote/parameter"
)

type Config struct {
	Remote  RemoteConfig  `yaml:"remote"`
	Logging LoggingConfig `yaml:"logging"`
	Audio   AudioConfig   `yaml:"audio"`
	Sandbox SandboxConfig `yaml:"sandbox"`
}

// RemoteConfig tunes the manager's timers
// Durations are Go duration strings ("1500ms", "2s")
type RemoteConfig struct {
	FreezeWindow   time.Duration `yaml:"freeze_window"`
	WeaponRumble   time.Duration `yaml:"weapon_rumble"`
	MaxRumble      time.Duration `yaml:"max_rumble"`
	MaxFrameDelta  time.Duration `yaml:"max_frame_delta"`
	EnabledAtStart bool          `yaml:"enabled_at_start"`
	LocalActor     uint32        `yaml:"local_actor"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
	File   string `yaml:"file"`
}

type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency float64 `yaml:"frequency"`
	Volume    float64 `yaml:"volume"`
}

type SandboxConfig struct {
	PickMaxDistance float64        `yaml:"pick_max_distance"`
	Targets         []TargetConfig `yaml:"targets"`
}

type TargetConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			FreezeWindow:   parameter.FreezeWindow,
			WeaponRumble:   parameter.WeaponRumble,
			MaxRumble:      parameter.MaxRumble,
			MaxFrameDelta:  parameter.MaxFrameDelta,
			EnabledAtStart: true,
			LocalActor:     parameter.ShooterLocal,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:   true,
			Frequency: parameter.BuzzFrequency,
			Volume:    parameter.BuzzVolume,
		},
		Sandbox: SandboxConfig{
			PickMaxDistance: parameter.PickMaxDistance,
			Targets: []TargetConfig{
				{Name: "crate", X: -4, Y: 0, Z: 12, Radius: 1.5},
				{Name: "barrel", X: 0, Y: 1, Z: 20, Radius: 1},
				{Name: "drone", X: 6, Y: 3, Z: 15, Radius: 0.8},
			},
		},
	}
}

// Load reads path over the defaults, fields absent from the file keep their default
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the manager cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("remote.%s must be positive, got %s", name, d))
		}
	}
	check("freeze_window", c.Remote.FreezeWindow)
	check("weapon_rumble", c.Remote.WeaponRumble)
	check("max_rumble", c.Remote.MaxRumble)
	check("max_frame_delta", c.Remote.MaxFrameDelta)

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0,1], got %g", c.Audio.Volume))
	}
	for i, t := range c.Sandbox.Targets {
		if t.Radius < 0 {
			errs = append(errs, fmt.Errorf("sandbox.targets[%d] %q: negative radius", i, t.Name))
		}
	}
	return errors.Join(errs...)
}
