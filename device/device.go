// Package device defines the boundary between the remote manager and a
// physical motion controller. Transport, pairing and report decoding live
// behind Device; the manager only sees consistent State snapshots.
package device

import (
	"errors"

	"github.com/lixenwraith/vi-remote/vmath"
)

var (
	// ErrNoDevice is returned by a Prober that found nothing to attach
	ErrNoDevice = errors.New("no remote found")

	// ErrDisconnected is returned by Poll and SetRumble after the link dropped
	ErrDisconnected = errors.New("remote disconnected")
)

// Buttons is the held-button bitmask of a single report
type Buttons uint16

const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonOne
	ButtonTwo
	ButtonPlus
	ButtonMinus
	ButtonHome
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// ButtonLock is the trigger that holds an aim lock
const ButtonLock = ButtonB

// Pointer is the IR cursor in normalized screen space, both axes in [-1,1]
// +X is right, +Y is up
type Pointer struct {
	X, Y float64
}

// State is one atomic snapshot handed to the manager per poll
type State struct {
	Buttons Buttons
	Pointer Pointer

	// Tracking is false when the pointer sensor lost its reference
	Tracking bool

	// Accel is passed through untouched in g units
	Accel vmath.Vec3F

	// Sequence increases with every report the transport decoded
	Sequence uint64
}

// Held reports whether every button in b is down
func (s State) Held(b Buttons) bool {
	return s.Buttons&b == b
}

// Device is a live connection to one controller
// Implementations hand out snapshots and never block the caller
type Device interface {
	Poll() (State, error)
	SetRumble(on bool) error
	IsConnected() bool
}

// Prober discovers a device to attach
type Prober interface {
	Probe() (Device, error)
}

// ProberFunc adapts a function to Prober
type ProberFunc func() (Device, error)

func (f ProberFunc) Probe() (Device, error) {
	return f()
}

// Static returns a Prober that always yields d, or ErrNoDevice when d is nil
func Static(d Device) Prober {
	return ProberFunc(func() (Device, error) {
		if d == nil {
			return nil, ErrNoDevice
		}
		return d, nil
	})
}
