package event

import (
	"sync"

	"github.com/lixenwraith/zenith/parameter"
)

// EventQueue is a bounded FIFO ring shared by front end goroutines and systems
// Any goroutine may Push; only the scheduler consumes, at its flush points
// When full, the oldest pending event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	head    int // index of the oldest pending event
	size    int
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest event on overflow
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	if q.size == len(q.ring) {
		q.ring[q.head] = ev
		q.head = (q.head + 1) % len(q.ring)
		q.dropped++
	} else {
		q.ring[(q.head+q.size)%len(q.ring)] = ev
		q.size++
	}
	q.mu.Unlock()
}

// Consume removes and returns every pending event in FIFO order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size == 0 {
		return nil
	}
	out := make([]GameEvent, q.size)
	for i := range out {
		idx := (q.head + i) % len(q.ring)
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{}
	}
	q.head, q.size = 0, 0
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Dropped returns how many events were lost to overflow
func (q *EventQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
