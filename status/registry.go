package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the metrics facade shared by the manager and its collaborators
// Components cache pointers at construction; frame updates write atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key=value", bools first, then ints, then floats
// Keys inside each group are sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Bools.Count()+r.Ints.Count()+r.Floats.Count())
	r.Bools.Range(func(key string, b *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, b.Load()))
	})
	r.Ints.Range(func(key string, i *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, i.Load()))
	})
	r.Floats.Range(func(key string, f *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, f.Get()))
	})
	return lines
}
