package haptic

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrNotInitialized is returned when an audible call is made without a speaker
var ErrNotInitialized = errors.New("haptic motor not initialized")

// Motor emulates a rumble motor with a low buzz on the speaker
// Without a speaker it still tracks on/off so callers behave identically
type Motor struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	buffer      time.Duration
	freq        float64
	volume      float64
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	running     bool
	initialized bool
}

// NewMotor creates a motor buzzing at freq Hz with linear gain volume
func NewMotor(sampleRate int, buffer time.Duration, freq, volume float64) *Motor {
	return &Motor{
		sampleRate: beep.SampleRate(sampleRate),
		buffer:     buffer,
		freq:       freq,
		volume:     volume,
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the motor's mixer
func (m *Motor) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(m.buffer)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	m.ctrl = &beep.Ctrl{
		Streamer: NewBuzzGenerator(m.sampleRate, m.freq, m.volume),
		Paused:   !m.running,
	}
	m.mixer.Add(m.ctrl)
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Start spins the motor up; repeated calls keep it running
func (m *Motor) Start() {
	m.setRunning(true)
}

// Stop spins the motor down
func (m *Motor) Stop() {
	m.setRunning(false)
}

func (m *Motor) setRunning(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = on
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = !on
	speaker.Unlock()
}

// Running reports whether the motor is spinning
func (m *Motor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Initialized reports whether a speaker is attached
func (m *Motor) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Chirp plays a short buzz independent of the motor state
// Used as an audible check at startup
func (m *Motor) Chirp(d time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	m.mixer.Add(beep.Take(m.sampleRate.N(d), NewBuzzGenerator(m.sampleRate, m.freq*2, m.volume)))
	speaker.Unlock()
	return nil
}

// Cleanup silences the motor and detaches from the speaker
func (m *Motor) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	m.running = false
	m.initialized = false
}

// BuzzGenerator produces a motor-like buzz: a square-ish wave with a slow wobble
type BuzzGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewBuzzGenerator creates a buzz generator
func NewBuzzGenerator(sr beep.SampleRate, freq, volume float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics approximate a square wave
		sample := math.Sin(2*math.Pi*g.freq*t) +
			math.Sin(2*math.Pi*g.freq*3*t)/3 +
			math.Sin(2*math.Pi*g.freq*5*t)/5

		// 8 Hz wobble, like an unbalanced mass
		wobble := 0.75 + 0.25*math.Sin(2*math.Pi*8*t)

		// 10 ms attack so a restart does not click
		attack := math.Min(t/0.01, 1.0)

		// Harmonic sum peaks near 1.5, scale back under unity
		sample *= g.volume * wobble * attack * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
