package device

import (
	"errors"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type countingMotor struct {
	starts, stops int
}

func (m *countingMotor) Start() { m.starts++ }
func (m *countingMotor) Stop()  { m.stops++ }

func TestStaticProber(t *testing.T) {
	if _, err := Static(nil).Probe(); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Expected ErrNoDevice, got %v", err)
	}
	m := NewMock()
	d, err := Static(m).Probe()
	if err != nil || d != m {
		t.Errorf("Expected mock back, got %v, %v", d, err)
	}
}

func TestMockDisconnect(t *testing.T) {
	m := NewMock()
	m.SetConnected(false)

	if _, err := m.Poll(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Poll: expected ErrDisconnected, got %v", err)
	}
	if err := m.SetRumble(true); !errors.Is(err, ErrDisconnected) {
		t.Errorf("SetRumble: expected ErrDisconnected, got %v", err)
	}
	if m.Rumbling() {
		t.Error("Rumble must not be accepted while disconnected")
	}
}

func TestSimulatedKeys(t *testing.T) {
	motor := &countingMotor{}
	s := NewSimulated(motor)

	s.HandleKey(tcell.KeyRune, 'b')
	s.HandleKey(tcell.KeyRight, 0)

	st, err := s.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !st.Held(ButtonLock) {
		t.Error("Expected lock trigger latched")
	}
	if st.Pointer.X <= 0 {
		t.Errorf("Expected pointer moved right, got %+v", st.Pointer)
	}

	if consumed := s.HandleKey(tcell.KeyRune, 'z'); consumed {
		t.Error("Unbound key must not be consumed")
	}

	_ = s.SetRumble(true)
	_ = s.SetRumble(true)
	if motor.starts != 1 {
		t.Errorf("Expected a single motor start, got %d", motor.starts)
	}

	s.HandleKey(tcell.KeyRune, 'c')
	if s.IsConnected() {
		t.Error("Expected disconnect after 'c'")
	}
	if s.Rumbling() || motor.stops != 1 {
		t.Errorf("Expected motor stopped on disconnect, rumbling=%v stops=%d", s.Rumbling(), motor.stops)
	}
}

func TestSimulatedMouseMapsToUnitSquare(t *testing.T) {
	s := NewSimulated(nil)
	s.HandleMouse(0, 0, 81, 25)
	st, _ := s.Poll()
	if st.Pointer.X != -1 || st.Pointer.Y != 1 {
		t.Errorf("top-left = %+v, want (-1, 1)", st.Pointer)
	}

	s.HandleMouse(40, 12, 81, 25)
	st, _ = s.Poll()
	if math.Abs(st.Pointer.X) > 1e-9 || math.Abs(st.Pointer.Y) > 1e-9 {
		t.Errorf("center = %+v, want (0, 0)", st.Pointer)
	}
}
