package term

import "strconv"

// Builder accumulates ANSI escape sequences and text into one buffer so a
// frame can be written with a single call.
type Builder struct {
	buf []byte
}

// NewBuilder creates a Builder with the given initial capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Bytes returns the built output.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the current length of the buffer.
func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) csi(params string, final byte) {
	b.buf = append(b.buf, '\x1b', '[')
	b.buf = append(b.buf, params...)
	b.buf = append(b.buf, final)
}

// MoveTo moves the cursor to column x, row y.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (b *Builder) MoveTo(x, y int) {
	b.buf = append(b.buf, '\x1b', '[')
	b.buf = strconv.AppendInt(b.buf, int64(y+1), 10)
	b.buf = append(b.buf, ';')
	b.buf = strconv.AppendInt(b.buf, int64(x+1), 10)
	b.buf = append(b.buf, 'H')
}

// Clear erases the whole screen and homes the cursor.
func (b *Builder) Clear() {
	b.csi("2", 'J')
	b.csi("", 'H')
}

// HideCursor makes the cursor invisible.
func (b *Builder) HideCursor() { b.csi("?25", 'l') }

// ShowCursor makes the cursor visible.
func (b *Builder) ShowCursor() { b.csi("?25", 'h') }

// EnterAltScreen switches to the alternate screen buffer.
func (b *Builder) EnterAltScreen() { b.csi("?1049", 'h') }

// ExitAltScreen returns to the main screen buffer.
func (b *Builder) ExitAltScreen() { b.csi("?1049", 'l') }

// EnableMouse turns on any-motion tracking with SGR-1006 encoding.
// Motion reports are needed to see the pointer enter and leave regions.
func (b *Builder) EnableMouse() {
	b.csi("?1003", 'h')
	b.csi("?1006", 'h')
}

// DisableMouse undoes EnableMouse.
func (b *Builder) DisableMouse() {
	b.csi("?1006", 'l')
	b.csi("?1003", 'l')
}

// Reverse starts reverse-video text.
func (b *Builder) Reverse() { b.csi("7", 'm') }

// Bold starts bold text.
func (b *Builder) Bold() { b.csi("1", 'm') }

// ResetStyle resets all text attributes to default.
func (b *Builder) ResetStyle() { b.csi("0", 'm') }

// WriteString appends literal text.
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}
