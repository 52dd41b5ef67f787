//go:build unix

package weft

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	prev *term.State
}

// enableRawMode puts the terminal into raw mode and returns the previous
// state: no echo, no canonical line buffering, no signal generation, so
// every byte reaches the event reader immediately.
func enableRawMode(fd int) (*rawModeState, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawModeState{prev: prev}, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil || state.prev == nil {
		return nil
	}
	return term.Restore(fd, state.prev)
}

// getTerminalSize returns the terminal dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
