package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/logger"
)

// Hub owns service instances and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	log      *zap.Logger
	services map[string]Service
	sorted   []string // dependency order, computed on InitAll
	started  []string // services past Start, for rollback and StopAll
}

// NewHub creates an empty hub; lg may be nil
func NewHub(lg *zap.Logger) *Hub {
	return &Hub{
		log:      logger.OrNop(lg),
		services: make(map[string]Service),
	}
}

// Register adds a service instance
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.sorted = nil
	return nil
}

// Get retrieves a service by name and asserts it to T
func Get[T Service](h *Hub, name string) (T, bool) {
	h.mu.Lock()
	svc, ok := h.services[name]
	h.mu.Unlock()

	typed, ok2 := svc.(T)
	return typed, ok && ok2
}

// InitAll resolves dependencies and calls Init on every service
// On failure, already-initialized services are stopped in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	for i, name := range h.sorted {
		if err := h.services[name].Init(); err != nil {
			h.rollback(h.sorted[:i])
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll calls Start in dependency order
// On failure, already-started services are stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		return errors.New("StartAll called before InitAll")
	}

	h.started = h.started[:0]
	for _, name := range h.sorted {
		if err := h.services[name].Start(); err != nil {
			h.rollback(h.started)
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops started services in reverse order
// Stop errors are logged, every service still gets its Stop call
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.rollback(h.started)
	h.started = nil
}

func (h *Hub) rollback(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			h.log.Warn("service stop failed", zap.String("service", names[i]), zap.Error(err))
		}
	}
}

// topologicalSort orders services with Kahn's algorithm
// Ties are broken by name so the order is stable across runs
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for name := range h.services {
		inDegree[name] = 0
	}
	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	result := make([]string, 0, len(h.services))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		result = append(result, name)

		var next []string
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				next = append(next, dependent)
			}
		}
		sort.Strings(next)
		ready = append(ready, next...)
	}

	if len(result) != len(h.services) {
		return nil, errors.New("circular dependency detected in services")
	}
	return result, nil
}
