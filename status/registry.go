// Package status holds named runtime counters written by systems and read by diagnostics feeds
package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Table maps metric names to stable pointers
// Systems resolve their pointers once at construction and write them lock-free afterwards
type Table[T any] struct {
	items sync.Map // string -> *T
}

// Get returns the metric registered under name, creating it on first use
func (t *Table[T]) Get(name string) *T {
	if v, ok := t.items.Load(name); ok {
		return v.(*T)
	}
	v, _ := t.items.LoadOrStore(name, new(T))
	return v.(*T)
}

// Names returns the registered names in sorted order
func (t *Table[T]) Names() []string {
	var names []string
	t.items.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	return names
}

// Len returns the number of registered metrics
func (t *Table[T]) Len() int {
	n := 0
	t.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Registry groups counters and gauges
type Registry struct {
	Ints   *Table[atomic.Int64]
	Floats *Table[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   &Table[atomic.Int64]{},
		Floats: &Table[Gauge]{},
	}
}

// Stats is a point-in-time copy of every metric
type Stats struct {
	Ints   map[string]int64   `json:"ints"`
	Floats map[string]float64 `json:"floats"`
}

// Snapshot copies the current value of every metric
func (r *Registry) Snapshot() Stats {
	s := Stats{
		Ints:   make(map[string]int64),
		Floats: make(map[string]float64),
	}
	for _, name := range r.Ints.Names() {
		s.Ints[name] = r.Ints.Get(name).Load()
	}
	for _, name := range r.Floats.Names() {
		s.Floats[name] = r.Floats.Get(name).Get()
	}
	return s
}
