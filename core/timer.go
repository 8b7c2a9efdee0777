package core

import (
	"math"
	"time"
)

// TimerMode selects what happens when a timer reaches its duration
type TimerMode uint8

const (
	// TimerOnce stops at its duration and stays finished until Reset
	TimerOnce TimerMode = iota
	// TimerRepeating wraps on completion, carrying the overshoot into the next period
	TimerRepeating
)

// Timer is a countdown driven by frame delta
// Repeating timers report Finished only on the tick that completed a period,
// one-shot timers report Finished from completion until Reset
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode

	finished      bool
	timesFinished uint32
}

// NewTimer creates a timer of the given duration and mode
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// TimerFromSeconds mirrors NewTimer with a float seconds duration
func TimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(math.Round(seconds*float64(time.Second))), mode)
}

// Tick advances elapsed time by delta
func (t *Timer) Tick(delta time.Duration) {
	if t.mode == TimerOnce {
		if t.finished {
			t.timesFinished = 0
			return
		}
		t.elapsed += delta
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.timesFinished = 1
		}
		return
	}

	t.elapsed += delta
	t.finished = false
	t.timesFinished = 0
	if t.duration <= 0 {
		// Zero-length period completes every tick
		t.finished = true
		t.timesFinished = 1
		t.elapsed = 0
		return
	}
	if t.elapsed >= t.duration {
		t.timesFinished = uint32(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.finished = true
	}
}

// Finished reports whether the timer completed (see type doc for mode semantics)
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinished returns how many periods completed during the last Tick
func (t *Timer) TimesFinished() uint32 {
	return t.timesFinished
}

// Reset restarts elapsed time, keeping the configured duration
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// ResetWith restarts the timer with a new duration (randomized reseeding)
func (t *Timer) ResetWith(d time.Duration) {
	t.duration = d
	t.Reset()
}

// Duration returns the configured period
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns progress within the current period
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Mode returns the timer mode
func (t *Timer) Mode() TimerMode {
	return t.mode
}

// Stopwatch is a free-running elapsed time tracker that never resets itself
type Stopwatch struct {
	elapsed time.Duration
}

// Tick advances the stopwatch
func (s *Stopwatch) Tick(delta time.Duration) {
	s.elapsed += delta
}

// Elapsed returns total ticked time
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Reached reports whether at least d has elapsed
func (s *Stopwatch) Reached(d time.Duration) bool {
	return s.elapsed >= d
}
