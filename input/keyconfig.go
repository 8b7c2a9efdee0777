package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// actionRegistry maps TOML action names to bindings
var actionRegistry = map[string]Binding{
	"move_left":   control(KeyLeft),
	"move_right":  control(KeyRight),
	"move_up":     control(KeyUp),
	"move_down":   control(KeyDown),
	"fire":        control(KeyFire),
	"precision":   control(KeyPrecision),
	"pause":       command(IntentPause),
	"restart":     command(IntentRestart),
	"quit":        command(IntentQuit),
	"toggle_mute": command(IntentToggleMute),
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

var specialNames = map[string]bool{
	SpecialLeft: true, SpecialRight: true, SpecialUp: true, SpecialDown: true,
	SpecialEnter: true, SpecialEscape: true, SpecialCtrlC: true,
}

// ParseBindings converts key → action pairs into a sparse override table
// Keys are single characters, rune aliases, or special key names
func ParseBindings(raw map[string]string) (*KeyTable, error) {
	kt := &KeyTable{Runes: map[rune]Binding{}, Specials: map[string]Binding{}}
	for key, action := range raw {
		b, ok := actionRegistry[action]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", key, action)
		}
		switch {
		case specialNames[key]:
			kt.Specials[key] = b
		case runeAliases[key] != 0:
			kt.Runes[runeAliases[key]] = b
		case utf8.RuneCountInString(key) == 1:
			r, _ := utf8.DecodeRuneInString(key)
			kt.Runes[r] = b
		default:
			return nil, fmt.Errorf("invalid key name %q", key)
		}
	}
	return kt, nil
}

// LoadKeyConfig parses a TOML document with a [keys] table into an override table
func LoadKeyConfig(data string) (*KeyTable, error) {
	var doc struct {
		Keys map[string]string `toml:"keys"`
	}
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ParseBindings(doc.Keys)
}
