package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/zenith/core"
)

// TimeSource abstracts the clock driving the scheduler loop
type TimeSource interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// ClockScheduler drives GameContext.Tick on a fixed interval from its own goroutine
// Deadlines advance by the interval so sleep jitter does not accumulate; after a long stall
// the schedule restarts from now instead of replaying missed ticks
type ClockScheduler struct {
	ctx      *GameContext
	clock    TimeSource
	interval time.Duration

	// beforeTick runs on the scheduler goroutine ahead of every tick, e.g. to publish input
	beforeTick func(now time.Time)

	lastTick  time.Time
	deadline  time.Time
	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// updateDone signals a completed tick; buffered, never blocks the loop
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler ticking ctx every interval
// Returns the tick-completion channel for render synchronization
func NewClockScheduler(ctx *GameContext, clock TimeSource, interval time.Duration, beforeTick func(time.Time)) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = wallClock{}
	}
	done := make(chan struct{}, 1)
	return &ClockScheduler{
		ctx:        ctx,
		clock:      clock,
		interval:   interval,
		beforeTick: beforeTick,
		stopChan:   make(chan struct{}),
		updateDone: done,
	}, done
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.loop)
	}
}

// Stop halts the loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()

	now := cs.clock.Now()
	cs.lastTick = now
	cs.deadline = now.Add(cs.interval)

	timer := time.NewTimer(cs.interval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		if !now.Before(cs.deadline) {
			cs.step(now)
		}

		sleep := cs.deadline.Sub(cs.clock.Now())
		if sleep < time.Millisecond {
			sleep = time.Millisecond
		}
		timer.Reset(sleep)
	}
}

// step runs one tick and advances the deadline with drift correction
func (cs *ClockScheduler) step(now time.Time) {
	if cs.beforeTick != nil {
		cs.beforeTick(now)
	}
	cs.ctx.Tick(now.Sub(cs.lastTick))
	cs.lastTick = now
	cs.tickCount.Add(1)

	cs.deadline = cs.deadline.Add(cs.interval)
	if now.Sub(cs.deadline) > 2*cs.interval {
		cs.deadline = now.Add(cs.interval)
	}

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
