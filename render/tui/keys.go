package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zenith/input"
)

var specialNames = map[tcell.Key]string{
	tcell.KeyLeft:   input.SpecialLeft,
	tcell.KeyRight:  input.SpecialRight,
	tcell.KeyUp:     input.SpecialUp,
	tcell.KeyDown:   input.SpecialDown,
	tcell.KeyEnter:  input.SpecialEnter,
	tcell.KeyEscape: input.SpecialEscape,
	tcell.KeyCtrlC:  input.SpecialCtrlC,
}

// ResolveKey maps a tcell key event through the table
// shift reports the precision modifier: an uppercase letter or a shifted special key
func ResolveKey(table *input.KeyTable, ev *tcell.EventKey) (b input.Binding, shift, ok bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		b, ok = table.LookupRune(r)
		return b, r >= 'A' && r <= 'Z', ok
	}
	name, known := specialNames[ev.Key()]
	if !known {
		return input.Binding{}, false, false
	}
	b, ok = table.LookupSpecial(name)
	return b, ev.Modifiers()&tcell.ModShift != 0, ok
}
