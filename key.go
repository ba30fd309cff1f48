package tooltip

import (
	"fmt"
	"strings"
)

// Key identifies the keys a tooltip host reacts to. ParseInput drops input
// that maps to none of them.
type Key uint8

const (
	KeyNone Key = iota
	// KeyRune is a printable character carried in KeyEvent.Rune.
	KeyRune
	// KeyEscape dismisses an open tooltip.
	KeyEscape
	// KeyCtrlC ends an interactive host.
	KeyCtrlC
)

var keyNames = [...]string{
	KeyNone:   "None",
	KeyRune:   "Rune",
	KeyEscape: "Escape",
	KeyCtrlC:  "Ctrl+C",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// Modifier holds the modifier bits of a mouse report. The values are the
// SGR protocol bits, so a report's button field is masked, not translated.
type Modifier uint8

const (
	ModShift Modifier = 4
	ModAlt   Modifier = 8
	ModCtrl  Modifier = 16

	modMask = ModShift | ModAlt | ModCtrl
)

// modNames is the print order used by String.
var modNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

// String joins the set modifiers with "+", or returns "None".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modNames {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}
