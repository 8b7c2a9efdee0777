package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEventsForwardsKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pumpEvents(ctx, screen, events)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			k, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if k.Rune() != 'x' {
				t.Errorf("forwarded rune %q", k.Rune())
			}
			return
		case <-deadline:
			t.Fatal("key not forwarded")
		}
	}
}

// A full channel with nobody reading must not pin the pump once the loop is gone
func TestPumpEventsStopsWhenLoopEnds(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pumpEvents(ctx, screen, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump blocked on send after cancellation")
	}
}
