package service

// Service defines the lifecycle of a subsystem owned by the game shell
//
// Lifecycle:
//  1. Construction
//  2. Init() - probe hardware, allocate state
//  3. Start() - launch background work if any
//  4. [frame updates]
//  5. Stop() - release resources, idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop must be safe to call more than once and without Init
	Stop() error
}
