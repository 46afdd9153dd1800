package device

import (
	"sync"
)

// Mock is a scriptable Device for tests
type Mock struct {
	mu        sync.Mutex
	state     State
	connected bool
	pollErr   error
	rumbling  bool
	polls     int
	rumbleLog []bool
}

// NewMock creates a connected mock with tracking on
func NewMock() *Mock {
	return &Mock{
		connected: true,
		state:     State{Tracking: true},
	}
}

// SetState replaces the snapshot returned by the next polls
func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// SetConnected simulates link loss and recovery
func (m *Mock) SetConnected(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = on
}

// FailPolls makes Poll return err until cleared with nil
func (m *Mock) FailPolls(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollErr = err
}

// Poll implements Device
func (m *Mock) Poll() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls++
	if !m.connected {
		return State{}, ErrDisconnected
	}
	if m.pollErr != nil {
		return State{}, m.pollErr
	}
	m.state.Sequence++
	return m.state, nil
}

// SetRumble implements Device
func (m *Mock) SetRumble(on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrDisconnected
	}
	m.rumbling = on
	m.rumbleLog = append(m.rumbleLog, on)
	return nil
}

// IsConnected implements Device
func (m *Mock) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Rumbling reports the last accepted SetRumble value
func (m *Mock) Rumbling() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rumbling
}

// Polls returns how many times Poll was called
func (m *Mock) Polls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.polls
}

// RumbleLog returns every accepted SetRumble argument in call order
func (m *Mock) RumbleLog() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.rumbleLog...)
}
