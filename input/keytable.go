package input

// Binding resolves a physical key to either a held control or a one-shot intent
type Binding struct {
	Key    Key
	Intent Intent
	// Held is true for controls, false for intents
	Held bool
}

// Named special keys reported by front ends
const (
	SpecialLeft   = "left"
	SpecialRight  = "right"
	SpecialUp     = "up"
	SpecialDown   = "down"
	SpecialEnter  = "enter"
	SpecialEscape = "esc"
	SpecialCtrlC  = "ctrl-c"
)

// KeyTable maps runes and named special keys to bindings
type KeyTable struct {
	Runes    map[rune]Binding
	Specials map[string]Binding
}

func control(k Key) Binding { return Binding{Key: k, Held: true} }
func command(i Intent) Binding { return Binding{Intent: i} }

// DefaultKeyTable returns arrows to move, Z or space to fire, P/Esc pause, R/Enter restart, Q/Ctrl-C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Binding{
			'z': control(KeyFire),
			' ': control(KeyFire),
			'h': control(KeyLeft),
			'l': control(KeyRight),
			'k': control(KeyUp),
			'j': control(KeyDown),
			'p': command(IntentPause),
			'r': command(IntentRestart),
			'q': command(IntentQuit),
			'm': command(IntentToggleMute),
		},
		Specials: map[string]Binding{
			SpecialLeft:   control(KeyLeft),
			SpecialRight:  control(KeyRight),
			SpecialUp:     control(KeyUp),
			SpecialDown:   control(KeyDown),
			SpecialEscape: command(IntentPause),
			SpecialEnter:  command(IntentRestart),
			SpecialCtrlC:  command(IntentQuit),
		},
	}
}

// LookupRune resolves a printable key; uppercase falls back to lowercase
func (kt *KeyTable) LookupRune(r rune) (Binding, bool) {
	if b, ok := kt.Runes[r]; ok {
		return b, true
	}
	if r >= 'A' && r <= 'Z' {
		b, ok := kt.Runes[r+('a'-'A')]
		return b, ok
	}
	return Binding{}, false
}

// LookupSpecial resolves a named special key
func (kt *KeyTable) LookupSpecial(name string) (Binding, bool) {
	b, ok := kt.Specials[name]
	return b, ok
}

// Merge applies override bindings on top of the table
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for r, b := range override.Runes {
		kt.Runes[r] = b
	}
	for n, b := range override.Specials {
		kt.Specials[n] = b
	}
}
