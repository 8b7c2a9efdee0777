package event

import (
	"strconv"
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	registerType("Tick", EventTick)
	registerType("EventSoundRequest", EventSoundRequest)
	registerType("EventPauseToggle", EventPauseToggle)
	registerType("EventRestart", EventRestart)
	registerType("EventPlayerDied", EventPlayerDied)
	registerType("EventEnemyKilled", EventEnemyKilled)
	registerType("EventWaveAdvanced", EventWaveAdvanced)
}

func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive for "Tick"
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// String returns the registered name, or "Event(n)" for unknown types
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Event(" + strconv.Itoa(int(t)) + ")"
}
