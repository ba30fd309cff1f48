package tooltip

import (
	"unicode/utf8"

	"github.com/grindlemire/go-tooltip/internal/debug"
)

// ParseInput parses raw terminal input into events.
// Handles:
//   - Single printable characters -> KeyEvent{Key: KeyRune, Rune: r}
//   - Ctrl+C; other control characters are dropped
//   - CSI sequences (\x1b[...) other than mouse reports are consumed silently
//   - SGR mouse sequences (\x1b[<b;x;yM) -> MouseEvent
//   - A lone \x1b, or \x1b followed by anything else -> KeyEscape
func ParseInput(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 < len(data) && data[i+1] == '[' {
				if i+2 < len(data) && data[i+2] == '<' {
					mouseEvent, consumed := parseMouseSGR(data[i:])
					if consumed > 0 {
						events = append(events, mouseEvent)
						i += consumed
						continue
					}
				}
				if consumed := skipCSISequence(data[i:]); consumed > 0 {
					i += consumed
					continue
				}
			}
			events = append(events, KeyEvent{Key: KeyEscape})
			i++
			continue
		}

		if b < 0x20 || b == 0x7f {
			if b == 0x03 {
				events = append(events, KeyEvent{Key: KeyCtrlC})
			}
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8, skip byte
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	if len(events) > 0 {
		debug.Log("ParseInput: %d bytes -> %d events", len(data), len(events))
	}
	return events
}

// skipCSISequence returns the length of the CSI sequence (ESC [ params
// final) at the start of data, or 0 if it is incomplete or malformed.
func skipCSISequence(data []byte) int {
	for i := 2; i < len(data); i++ {
		b := data[i]
		if b >= 0x40 && b <= 0x7e {
			return i + 1
		}
		if b < 0x20 || b > 0x3f {
			return 0
		}
	}
	return 0
}

// parseMouseSGR parses an SGR extended mouse sequence.
// Format: ESC [ < button ; x ; y M (press) or ESC [ < button ; x ; y m (release)
// The button field encodes: button number + modifier bits
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=release/none)
//	bit 2: shift
//	bit 3: meta/alt
//	bit 4: ctrl
//	bit 5: motion
//	bit 6: wheel (64=up, 65=down)
//
// Returns (MouseEvent, bytes consumed). Returns (MouseEvent{}, 0) on failure.
func parseMouseSGR(data []byte) (MouseEvent, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseEvent{}, 0
	}

	i := 3
	button, x, y := 0, 0, 0
	stage := 0 // 0=button, 1=x, 2=y

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			switch stage {
			case 0:
				button = button*10 + int(b-'0')
			case 1:
				x = x*10 + int(b-'0')
			case 2:
				y = y*10 + int(b-'0')
			}
			i++
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				return MouseEvent{}, 0
			}
			i++
			continue
		}

		if b == 'M' || b == 'm' {
			if stage != 2 {
				return MouseEvent{}, 0
			}
			return decodeMouseButton(button, b == 'M', x-1, y-1), i + 1
		}

		return MouseEvent{}, 0
	}

	// Incomplete sequence
	return MouseEvent{}, 0
}

func decodeMouseButton(button int, press bool, x, y int) MouseEvent {
	event := MouseEvent{X: x, Y: y, Mod: Modifier(button) & modMask}

	if button&64 != 0 {
		if button&1 != 0 {
			event.Button = MouseWheelDown
		} else {
			event.Button = MouseWheelUp
		}
		event.Action = MousePress
		return event
	}

	switch button & 3 {
	case 0:
		event.Button = MouseLeft
	case 1:
		event.Button = MouseMiddle
	case 2:
		event.Button = MouseRight
	case 3:
		event.Button = MouseNone
	}

	switch {
	case button&32 != 0:
		event.Action = MouseMotion
	case press:
		event.Action = MousePress
	default:
		event.Action = MouseRelease
	}
	return event
}
