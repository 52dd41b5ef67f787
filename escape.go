package weft

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder accumulates ANSI escape sequences and text into a reusable
// byte buffer. Terminal backends build one frame's worth of output with it
// and write the bytes in a single syscall.
type escBuilder struct {
	buf []byte
}

// newEscBuilder returns a builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated output. The slice is only valid until the
// next write or Reset.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the number of accumulated bytes.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// Reset clears the buffer, retaining its capacity.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// WriteString appends raw text.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// WriteRune appends a single rune as UTF-8.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo emits an absolute cursor position sequence.
// Coordinates are 0-indexed; the emitted sequence is 1-indexed per ANSI.
func (e *escBuilder) MoveTo(x, y int) {
	e.WriteString("\x1b[")
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// move emits a relative cursor movement. The count is omitted when it is 1,
// matching the terminal default. Non-positive counts emit nothing.
func (e *escBuilder) move(n int, dir byte) {
	if n <= 0 {
		return
	}
	e.WriteString("\x1b[")
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, dir)
}

// MoveUp moves the cursor up n rows.
func (e *escBuilder) MoveUp(n int) {
	e.move(n, 'A')
}

// MoveDown moves the cursor down n rows.
func (e *escBuilder) MoveDown(n int) {
	e.move(n, 'B')
}

// MoveRight moves the cursor right n columns.
func (e *escBuilder) MoveRight(n int) {
	e.move(n, 'C')
}

// MoveLeft moves the cursor left n columns.
func (e *escBuilder) MoveLeft(n int) {
	e.move(n, 'D')
}

// ClearScreen erases the entire screen.
func (e *escBuilder) ClearScreen() {
	e.WriteString("\x1b[2J")
}

// ClearLine erases the entire current line.
func (e *escBuilder) ClearLine() {
	e.WriteString("\x1b[2K")
}

// ClearScrollback erases the scrollback buffer (xterm extension).
func (e *escBuilder) ClearScrollback() {
	e.WriteString("\x1b[3J")
}

// ClearToEnd erases from the cursor to the end of the screen.
func (e *escBuilder) ClearToEnd() {
	e.WriteString("\x1b[0J")
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.WriteString("\x1b[?25l")
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.WriteString("\x1b[?25h")
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.WriteString("\x1b[?1049h")
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.WriteString("\x1b[?1049l")
}

// EnableMouse turns on button-event mouse tracking with SGR encoding.
func (e *escBuilder) EnableMouse() {
	e.WriteString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
}

// DisableMouse turns mouse tracking back off.
func (e *escBuilder) DisableMouse() {
	e.WriteString("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
}

// EnablePaste turns on bracketed paste mode.
func (e *escBuilder) EnablePaste() {
	e.WriteString("\x1b[?2004h")
}

// DisablePaste turns bracketed paste mode back off.
func (e *escBuilder) DisablePaste() {
	e.WriteString("\x1b[?2004l")
}

// ResetStyle emits a bare SGR reset.
func (e *escBuilder) ResetStyle() {
	e.WriteString("\x1b[0m")
}

// SetStyle emits a single SGR sequence for the full style: a reset followed
// by attribute codes and colors. Colors are downgraded through
// caps.EffectiveColor first, so an RGB color on a 256-color terminal emits
// the palette approximation.
func (e *escBuilder) SetStyle(style Style, caps Capabilities) {
	e.WriteString("\x1b[0")

	if style.HasAttr(AttrBold) {
		e.WriteString(";1")
	}
	if style.HasAttr(AttrDim) {
		e.WriteString(";2")
	}
	if style.HasAttr(AttrItalic) {
		e.WriteString(";3")
	}
	if style.HasAttr(AttrUnderline) {
		e.WriteString(";4")
	}
	if style.HasAttr(AttrBlink) {
		e.WriteString(";5")
	}
	if style.HasAttr(AttrReverse) {
		e.WriteString(";7")
	}
	if style.HasAttr(AttrStrikethrough) {
		e.WriteString(";9")
	}

	e.writeColor(caps.EffectiveColor(style.Fg), 30, 90, 38)
	e.writeColor(caps.EffectiveColor(style.Bg), 40, 100, 48)

	e.buf = append(e.buf, 'm')
}

// writeColor appends the SGR parameters for one color. base and brightBase
// select foreground (30/90) or background (40/100) encodings for the 16
// named colors; extended is 38 or 48 for palette and RGB forms. Default
// colors emit nothing, leaving the reset in effect.
func (e *escBuilder) writeColor(c Color, base, brightBase, extended int) {
	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		e.buf = append(e.buf, ';')
		switch {
		case idx < 8:
			e.writeInt(base + idx)
		case idx < 16:
			e.writeInt(brightBase + idx - 8)
		default:
			e.writeInt(extended)
			e.WriteString(";5;")
			e.writeInt(idx)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(extended)
		e.WriteString(";2;")
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}
