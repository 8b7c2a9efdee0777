package core

import (
	"testing"
	"time"
)

func TestRepeatingTimerRollsOverPreservingOvershoot(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, TimerRepeating)

	timer.Tick(60 * time.Millisecond)
	if timer.Finished() {
		t.Fatal("finished before duration")
	}

	timer.Tick(60 * time.Millisecond)
	if !timer.Finished() {
		t.Fatal("expected finished after 120ms")
	}
	if got := timer.Elapsed(); got != 20*time.Millisecond {
		t.Errorf("expected 20ms overshoot carried, got %v", got)
	}

	// Next tick without completing clears the flag
	timer.Tick(10 * time.Millisecond)
	if timer.Finished() {
		t.Error("repeating timer should report finished only on the completing tick")
	}
}

func TestRepeatingTimerCountsMultiplePeriods(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, TimerRepeating)
	timer.Tick(350 * time.Millisecond)

	if !timer.Finished() {
		t.Fatal("expected finished")
	}
	if got := timer.TimesFinished(); got != 3 {
		t.Errorf("expected 3 completions, got %d", got)
	}
	if got := timer.Elapsed(); got != 50*time.Millisecond {
		t.Errorf("expected 50ms remainder, got %v", got)
	}
}

func TestOnceTimerStaysFinishedUntilReset(t *testing.T) {
	timer := NewTimer(time.Second, TimerOnce)
	timer.Tick(1500 * time.Millisecond)

	if !timer.Finished() {
		t.Fatal("expected finished")
	}
	if timer.Elapsed() != time.Second {
		t.Errorf("one-shot elapsed should clamp at duration, got %v", timer.Elapsed())
	}

	timer.Tick(time.Millisecond)
	if !timer.Finished() {
		t.Error("one-shot timer should stay finished")
	}

	timer.ResetWith(2 * time.Second)
	if timer.Finished() {
		t.Error("reset timer should not be finished")
	}
	if timer.Duration() != 2*time.Second {
		t.Errorf("expected reseeded duration 2s, got %v", timer.Duration())
	}
	timer.Tick(1999 * time.Millisecond)
	if timer.Finished() {
		t.Error("finished before reseeded duration")
	}
	timer.Tick(time.Millisecond)
	if !timer.Finished() {
		t.Error("expected finished at reseeded duration")
	}
}

func TestTimerFromSeconds(t *testing.T) {
	timer := TimerFromSeconds(0.18, TimerRepeating)
	if timer.Duration() != 180*time.Millisecond {
		t.Errorf("expected 180ms, got %v", timer.Duration())
	}
	if timer.Mode() != TimerRepeating {
		t.Error("expected repeating mode")
	}
}

func TestStopwatchNeverResets(t *testing.T) {
	var sw Stopwatch
	for i := 0; i < 25; i++ {
		sw.Tick(100 * time.Millisecond)
	}
	if sw.Elapsed() != 2500*time.Millisecond {
		t.Errorf("expected 2.5s, got %v", sw.Elapsed())
	}
	if !sw.Reached(1200 * time.Millisecond) {
		t.Error("expected reached 1.2s")
	}
	if sw.Reached(3 * time.Second) {
		t.Error("should not have reached 3s")
	}
}
