//go:build unix

package weft

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a Unix terminal. It multiplexes
// raw stdin bytes, SIGWINCH resize signals, and an optional self-pipe
// interrupt through select(2).
type stdinReader struct {
	fd         int            // stdin file descriptor
	buf        []byte         // Read buffer for escape sequences
	partialBuf []byte         // Incomplete trailing bytes (UTF-8 or paste) from the last read
	pending    []Event        // Parsed events waiting to be returned
	sigCh      chan os.Signal // For SIGWINCH (resize) handling

	// Resize debouncing: rapid SIGWINCH bursts during window dragging
	// collapse into one ResizeEvent once the window goes quiet.
	pendingResize  *ResizeEvent
	lastResizeTime time.Time

	// Self-pipe for interrupting a blocking select.
	interruptR int
	interruptW int
}

var _ InterruptibleReader = (*stdinReader)(nil)

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:         int(in.Fd()),
		buf:        make([]byte, 256),
		sigCh:      make(chan os.Signal, 1),
		interruptR: -1,
		interruptW: -1,
	}

	// Set up SIGWINCH signal for resize events
	signal.Notify(r.sigCh, syscall.SIGWINCH)

	return r, nil
}

// PollEvent reads the next event with a timeout.
// Returns (event, true) if an event was read, or (nil, false) on timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	// Return pending events first
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, true
	}

	deadline := time.Time{}
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		r.drainResizeSignals()

		// Emit a debounced resize once the signal burst has settled.
		if r.pendingResize != nil && time.Since(r.lastResizeTime) >= resizeDebounceWindow {
			ev := *r.pendingResize
			r.pendingResize = nil
			return ev, true
		}

		// Never block past the debounce expiry while a resize is pending.
		wait := timeout
		if !deadline.IsZero() {
			wait = time.Until(deadline)
			if wait < 0 {
				wait = 0
			}
		}
		if r.pendingResize != nil {
			untilFlush := resizeDebounceWindow - time.Since(r.lastResizeTime)
			if untilFlush < 0 {
				untilFlush = 0
			}
			if wait < 0 || untilFlush < wait {
				wait = untilFlush
			}
		}

		ready, interrupted, err := selectWithTimeoutAndInterrupt(r.fd, r.interruptR, wait)
		if err != nil {
			return nil, false
		}
		if interrupted {
			r.drainInterrupt()
			return nil, false
		}

		if ready {
			if ev, ok := r.readAndParse(); ok {
				return ev, true
			}
		}

		// Keep waiting while blocking, while the timeout has budget
		// left, or while a pending resize still needs flushing.
		if r.pendingResize != nil || timeout < 0 {
			continue
		}
		if !time.Now().Before(deadline) {
			return nil, false
		}
	}
}

// readAndParse reads available bytes and parses them into events,
// carrying incomplete trailing bytes over to the next read.
func (r *stdinReader) readAndParse() (Event, bool) {
	n, err := syscall.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	data := r.buf[:n]
	if len(r.partialBuf) > 0 {
		data = append(r.partialBuf, data...)
		r.partialBuf = nil
	}

	events, remaining := parseInputWithRemainder(data)
	if len(remaining) > 0 {
		r.partialBuf = make([]byte, len(remaining))
		copy(r.partialBuf, remaining)
	}

	r.pending = events
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, true
	}
	return nil, false
}

// drainResizeSignals consumes any queued SIGWINCH deliveries and records
// the latest terminal size for debounced emission.
func (r *stdinReader) drainResizeSignals() {
	for {
		select {
		case <-r.sigCh:
			w, h := getTerminalSizeForReader(r.fd)
			r.pendingResize = &ResizeEvent{Width: w, Height: h}
			r.lastResizeTime = time.Now()
		default:
			return
		}
	}
}

// Close releases resources.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	close(r.sigCh)
	if r.interruptR >= 0 {
		unix.Close(r.interruptR)
		r.interruptR = -1
	}
	if r.interruptW >= 0 {
		unix.Close(r.interruptW)
		r.interruptW = -1
	}
	return nil
}

// EnableInterrupt creates the self-pipe used to wake a blocking PollEvent.
func (r *stdinReader) EnableInterrupt() error {
	if r.interruptR >= 0 {
		return nil
	}
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return err
	}
	r.interruptR = fds[0]
	r.interruptW = fds[1]
	return nil
}

// Interrupt wakes up a blocking PollEvent call.
func (r *stdinReader) Interrupt() error {
	if r.interruptW < 0 {
		return nil
	}
	_, err := unix.Write(r.interruptW, []byte{0})
	return err
}

// drainInterrupt consumes interrupt bytes so the pipe does not stay readable.
func (r *stdinReader) drainInterrupt() {
	if r.interruptR < 0 {
		return
	}
	var b [8]byte
	unix.Read(r.interruptR, b[:])
}

// getTerminalSizeForReader returns the terminal dimensions for the EventReader.
// This is separate from getTerminalSize in terminal_unix.go to avoid circular deps.
func getTerminalSizeForReader(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		// Default to standard terminal size on error
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectWithTimeoutAndInterrupt performs a select() call on fd and optionally an interrupt fd.
// Returns (ready, interrupted, err) where:
// - ready=true if the main fd is ready for reading
// - interrupted=true if the interrupt fd was triggered
// - err is non-nil on error
func selectWithTimeoutAndInterrupt(fd, interruptFd int, timeout time.Duration) (ready, interrupted bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	maxFd := fd
	if interruptFd >= 0 {
		readFds.Set(interruptFd)
		if interruptFd > maxFd {
			maxFd = interruptFd
		}
	}

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}
	// If timeout < 0, tv is nil which means block indefinitely

	n, err := unix.Select(maxFd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, false, nil
		}
		return false, false, err
	}

	if n == 0 {
		return false, false, nil // Timeout
	}

	if interruptFd >= 0 && readFds.IsSet(interruptFd) {
		return false, true, nil
	}

	return readFds.IsSet(fd), false, nil
}
