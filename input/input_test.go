package input

import (
	"testing"
	"time"
)

func TestKeySet(t *testing.T) {
	s := Keys(KeyLeft, KeyFire)
	if !s.Has(KeyLeft) || !s.Has(KeyFire) || s.Has(KeyRight) {
		t.Errorf("unexpected set %b", s)
	}
	s = s.Without(KeyLeft)
	if s.Has(KeyLeft) {
		t.Error("Without failed")
	}
}

func TestHeldKeysTimeout(t *testing.T) {
	h := NewHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(KeyLeft, t0)
	h.Press(KeyFire, t0)
	if got := h.Snapshot(t0.Add(100 * time.Millisecond)); got != Keys(KeyLeft, KeyFire) {
		t.Errorf("expected both held, got %b", got)
	}

	// auto-repeat keeps left alive
	h.Press(KeyLeft, t0.Add(120*time.Millisecond))
	if got := h.Snapshot(t0.Add(200 * time.Millisecond)); got != Keys(KeyLeft) {
		t.Errorf("expected only left, got %b", got)
	}

	h.Release(KeyLeft)
	if got := h.Snapshot(t0.Add(200 * time.Millisecond)); got != 0 {
		t.Errorf("expected empty set, got %b", got)
	}
}

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		r      rune
		held   bool
		key    Key
		intent Intent
	}{
		{'z', true, KeyFire, IntentNone},
		{'Z', true, KeyFire, IntentNone},
		{'P', false, 0, IntentPause},
		{'r', false, 0, IntentRestart},
		{'q', false, 0, IntentQuit},
	}
	for _, tt := range tests {
		b, ok := kt.LookupRune(tt.r)
		if !ok || b.Held != tt.held || b.Key != tt.key || b.Intent != tt.intent {
			t.Errorf("%q: got %+v, %v", tt.r, b, ok)
		}
	}

	if b, ok := kt.LookupSpecial(SpecialEscape); !ok || b.Intent != IntentPause {
		t.Errorf("esc: got %+v", b)
	}
	if _, ok := kt.LookupRune('x'); ok {
		t.Error("x should be unbound")
	}
}

func TestLoadKeyConfig(t *testing.T) {
	override, err := LoadKeyConfig(`
[keys]
x = "fire"
space = "pause"
enter = "quit"
`)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	kt := DefaultKeyTable()
	kt.Merge(override)

	if b, _ := kt.LookupRune('x'); !b.Held || b.Key != KeyFire {
		t.Errorf("x: got %+v", b)
	}
	if b, _ := kt.LookupRune(' '); b.Held || b.Intent != IntentPause {
		t.Errorf("space: got %+v", b)
	}
	if b, _ := kt.LookupSpecial(SpecialEnter); b.Intent != IntentQuit {
		t.Errorf("enter: got %+v", b)
	}
	if b, _ := kt.LookupRune('z'); b.Key != KeyFire {
		t.Error("unrelated default binding lost")
	}

	for _, bad := range []string{
		"[keys]\nx = \"teleport\"",
		"[keys]\nxy = \"fire\"",
		"[keys\n",
	} {
		if _, err := LoadKeyConfig(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
