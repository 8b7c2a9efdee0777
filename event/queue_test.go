package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/zenith/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSoundRequest, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("expected 5 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("event %d out of order: frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("queue should be empty after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("expected frames 10..%d, got %d..%d", total-1, got[0].Frame, got[len(got)-1].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(GameEvent{Type: EventPauseToggle})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 200 {
		t.Errorf("expected 200 events, got %d", got)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }
func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev) }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	audio := &recordingHandler{types: []EventType{EventSoundRequest}}
	match := &recordingHandler{types: []EventType{EventPauseToggle, EventRestart}}
	r.Register(audio)
	r.Register(match)

	q.Push(GameEvent{Type: EventSoundRequest, Payload: &SoundRequestPayload{Cue: "sounds/fire.wav"}})
	q.Push(GameEvent{Type: EventRestart})
	q.Push(GameEvent{Type: EventPlayerDied})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("expected 3 consumed, got %d", n)
	}
	if len(audio.seen) != 1 || audio.seen[0].Payload.(*SoundRequestPayload).Cue != "sounds/fire.wav" {
		t.Errorf("audio handler got %+v", audio.seen)
	}
	if len(match.seen) != 1 || match.seen[0].Type != EventRestart {
		t.Errorf("match handler got %+v", match.seen)
	}
	if r.HandlerCount(EventPlayerDied) != 0 {
		t.Error("no handler registered for player death")
	}
}

func TestEventNames(t *testing.T) {
	if EventRestart.String() != "EventRestart" {
		t.Errorf("got %q", EventRestart.String())
	}
	if et, ok := GetEventType("tick"); !ok || et != EventTick {
		t.Error("tick lookup failed")
	}
	if EventType(999).String() != "Event(999)" {
		t.Errorf("got %q", EventType(999).String())
	}
}
