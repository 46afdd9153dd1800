package device

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-remote/parameter"
)

// Motor is the haptic output of a simulated remote
type Motor interface {
	Start()
	Stop()
}

// Simulated is a keyboard/mouse driven remote for running without hardware
// Terminals report key presses only, so buttons latch until pressed again
//
// Keys:
//
//	arrows   move the pointer
//	b        toggle the lock trigger
//	a        toggle A
//	t        toggle pointer tracking
//	c        toggle the connection
//
// Mouse motion places the pointer directly.
type Simulated struct {
	mu        sync.Mutex
	state     State
	connected bool
	rumbling  bool
	motor     Motor
}

// NewSimulated creates a connected simulated remote, motor may be nil
func NewSimulated(motor Motor) *Simulated {
	return &Simulated{
		connected: true,
		motor:     motor,
		state:     State{Tracking: true},
	}
}

// Poll implements Device
func (s *Simulated) Poll() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return State{}, ErrDisconnected
	}
	s.state.Sequence++
	return s.state, nil
}

// SetRumble implements Device
func (s *Simulated) SetRumble(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return ErrDisconnected
	}
	if on == s.rumbling {
		return nil
	}
	s.rumbling = on
	if s.motor != nil {
		if on {
			s.motor.Start()
		} else {
			s.motor.Stop()
		}
	}
	return nil
}

// IsConnected implements Device
func (s *Simulated) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Rumbling reports whether the motor is running
func (s *Simulated) Rumbling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rumbling
}

// HandleEvent applies a terminal event to the simulated state
// Returns true if the event was consumed; w and h are the screen size for mouse mapping
func (s *Simulated) HandleEvent(ev tcell.Event, w, h int) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return s.HandleMouse(x, y, w, h)
	}
	return false
}

// HandleKey applies a decoded key press
func (s *Simulated) HandleKey(key tcell.Key, r rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case tcell.KeyUp:
		s.movePointer(0, parameter.PointerStep)
	case tcell.KeyDown:
		s.movePointer(0, -parameter.PointerStep)
	case tcell.KeyLeft:
		s.movePointer(-parameter.PointerStep, 0)
	case tcell.KeyRight:
		s.movePointer(parameter.PointerStep, 0)
	case tcell.KeyRune:
		switch r {
		case 'b':
			s.state.Buttons ^= ButtonLock
		case 'a':
			s.state.Buttons ^= ButtonA
		case 't':
			s.state.Tracking = !s.state.Tracking
		case 'c':
			s.connected = !s.connected
			if !s.connected {
				// A dropped link takes the motor with it
				s.rumbling = false
				if s.motor != nil {
					s.motor.Stop()
				}
			}
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// HandleMouse places the pointer at cell (x, y) of a w*h screen
func (s *Simulated) HandleMouse(x, y, w, h int) bool {
	if w <= 1 || h <= 1 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Pointer = Pointer{
		X: clampUnit(2*float64(x)/float64(w-1) - 1),
		Y: clampUnit(1 - 2*float64(y)/float64(h-1)),
	}
	return true
}

func (s *Simulated) movePointer(dx, dy float64) {
	s.state.Pointer.X = clampUnit(s.state.Pointer.X + dx)
	s.state.Pointer.Y = clampUnit(s.state.Pointer.Y + dy)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
