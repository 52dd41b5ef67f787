package weft

import (
	"io"
	"os"
)

// ANSITerminal implements Terminal using ANSI escape sequences.
// It works with any terminal emulator that supports ANSI codes.
type ANSITerminal struct {
	out       io.Writer     // Output destination (usually os.Stdout)
	in        io.Reader     // Input source (usually os.Stdin)
	caps      Capabilities  // Terminal capabilities
	lastStyle Style         // Last emitted style (for optimization)
	esc       *escBuilder   // Escape sequence builder
	inFd      uintptr       // File descriptor for input (needed for raw mode)
	outFd     uintptr       // File descriptor for output (needed for size query)
	rawState  *rawModeState // Platform-specific raw mode state
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a new ANSI terminal with capabilities detected
// from the environment. The output writer is typically os.Stdout and the
// input reader is os.Stdin.
func NewANSITerminal(out io.Writer, in io.Reader) (*ANSITerminal, error) {
	t := &ANSITerminal{
		out:  out,
		in:   in,
		caps: DetectCapabilities(),
		esc:  newEscBuilder(4096),
	}

	// Try to get file descriptors for size queries and raw mode
	if f, ok := out.(*os.File); ok {
		t.outFd = f.Fd()
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = f.Fd()
	}

	return t, nil
}

// NewANSITerminalWithCaps creates a new ANSI terminal with explicit capabilities.
// Use this when you want to override auto-detection.
func NewANSITerminalWithCaps(out io.Writer, in io.Reader, caps Capabilities) *ANSITerminal {
	t := &ANSITerminal{
		out:  out,
		in:   in,
		caps: caps,
		esc:  newEscBuilder(4096),
	}

	if f, ok := out.(*os.File); ok {
		t.outFd = f.Fd()
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = f.Fd()
	}

	return t
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := getTerminalSize(int(t.outFd))
	if err != nil {
		return 80, 24 // Sensible default
	}
	return w, h
}

// Flush writes the given cell changes to the terminal.
// It optimizes cursor movement and style changes for efficiency, and
// emits the whole batch in one write.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	lastX, lastY := -1, -1

	for _, ch := range changes {
		// Skip continuation cells entirely - they represent the second column
		// of a wide character, which was already rendered by the primary cell.
		// Processing them would incorrectly move the cursor backwards.
		if ch.Cell.IsContinuation() {
			continue
		}

		// Only move the cursor when the next cell is not sequential.
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}

		// Only emit style changes when style differs
		if !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style, t.caps)
			t.lastStyle = ch.Cell.Style
		}

		if ch.Cell.Rune != 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}

		lastX = ch.X
		if ch.Cell.Width > 1 {
			// Wide character advances cursor by its width
			lastX = ch.X + int(ch.Cell.Width) - 1
		}
		lastY = ch.Y
	}

	t.out.Write(t.esc.Bytes())
}

// Clear clears the entire terminal screen and scrollback.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.esc.ClearScrollback()
	t.esc.MoveTo(0, 0)
	t.out.Write(t.esc.Bytes())
	t.lastStyle = NewStyle()
}

// SetCursor moves the cursor to the specified position (0-indexed).
func (t *ANSITerminal) SetCursor(x, y int) {
	t.esc.Reset()
	t.esc.MoveTo(x, y)
	t.out.Write(t.esc.Bytes())
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

// EnterRawMode puts the terminal into raw mode and enables bracketed
// paste. Raw mode entry is implemented in platform-specific files.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := enableRawMode(int(t.inFd))
	if err != nil {
		return err
	}
	t.rawState = state
	t.esc.Reset()
	t.esc.EnablePaste()
	t.out.Write(t.esc.Bytes())
	return nil
}

// ExitRawMode restores the terminal to its previous mode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	t.esc.Reset()
	t.esc.DisablePaste()
	t.out.Write(t.esc.Bytes())
	err := disableRawMode(int(t.inFd), t.rawState)
	t.rawState = nil
	return err
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.out.Write(t.esc.Bytes())
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	t.out.Write(t.esc.Bytes())
}

// EnableMouse turns on SGR mouse reporting.
func (t *ANSITerminal) EnableMouse() {
	t.esc.Reset()
	t.esc.EnableMouse()
	t.out.Write(t.esc.Bytes())
}

// DisableMouse turns mouse reporting back off.
func (t *ANSITerminal) DisableMouse() {
	t.esc.Reset()
	t.esc.DisableMouse()
	t.out.Write(t.esc.Bytes())
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// SetCaps updates the terminal's capabilities.
// This is useful after detecting capabilities at runtime.
func (t *ANSITerminal) SetCaps(caps Capabilities) {
	t.caps = caps
}

// WriteDirect writes raw bytes directly to the terminal output.
// Use for escape sequences or content that doesn't need processing.
func (t *ANSITerminal) WriteDirect(b []byte) (int, error) {
	return t.out.Write(b)
}
