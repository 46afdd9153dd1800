package event

import "sync"

// DefaultQueueSize bounds pending events between two dispatches
const DefaultQueueSize = 256

// EventQueue is a bounded FIFO for game events
// Push is safe from any goroutine; Consume belongs to the frame loop
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	events  []GameEvent
	head    int
	count   int
	dropped uint64
}

// NewEventQueue creates a queue holding up to size events
func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &EventQueue{events: make([]GameEvent, size)}
}

// Push appends ev, evicting the oldest pending event when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	size := len(eq.events)
	if eq.count == size {
		eq.head = (eq.head + 1) % size
		eq.count--
		eq.dropped++
	}
	eq.events[(eq.head+eq.count)%size] = ev
	eq.count++
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	size := len(eq.events)
	result := make([]GameEvent, eq.count)
	for i := range result {
		idx := (eq.head + i) % size
		result[i] = eq.events[idx]
		eq.events[idx] = GameEvent{}
	}
	eq.head = 0
	eq.count = 0
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns how many events were evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
