package engine

import "github.com/lixenwraith/zenith/event"

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(et event.EventType, payload any) {
	res := w.Resources
	if res.Event == nil {
		return
	}
	var frame int64
	if res.Time != nil {
		frame = res.Time.FrameNumber
	}
	res.Event.Queue.Push(event.GameEvent{Type: et, Payload: payload, Frame: frame})
}

// PlaySound queues a sound cue request
func (w *World) PlaySound(cue string) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Cue: cue})
}
