package weft

import (
	"os"
	"os/signal"
	"time"
)

// wheelScrollLines is how many rows a single wheel tick scrolls a viewport.
const wheelScrollLines = 3

// Run starts the main event loop. Blocks until Stop is called, SIGINT is
// received, or a frame fails with a configuration error. Watchers run in
// an error group supervised by the loop; the first watcher error stops the
// app and is returned.
func (a *App) Run() error {
	// Handle Ctrl+C gracefully
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			a.Stop()
		case <-a.stopCh:
			// App already stopped, clean up signal handler
		}
		signal.Stop(sigCh)
	}()

	// Start input reader in background
	go a.readInputEvents()

	// Supervise watchers. A watcher returning an error takes the whole
	// app down; clean exits do not.
	for _, w := range a.watchers {
		w := w
		a.group.Go(func() error {
			if err := w.Watch(a.eventQueue, a.stopCh); err != nil {
				a.Stop()
				return err
			}
			return nil
		})
	}

	var runErr error

	// Initial render
	if err := a.renderFrame(); err != nil {
		runErr = err
		a.Stop()
	}

	// Frame-based loop with configurable frame timing
loop:
	for runErr == nil {
		select {
		case <-a.stopCh:
			break loop
		default:
		}

		frameStart := time.Now()

		// Process events for up to half the frame budget (non-blocking)
		eventDeadline := frameStart.Add(a.frameDuration / 2)
		for time.Now().Before(eventDeadline) {
			select {
			case handler := <-a.eventQueue:
				handler()
			case <-a.stopCh:
				break loop
			default:
				// No more events, move to render phase
				goto render
			}
		}

	render:
		if a.checkAndClearDirty() {
			if err := a.renderFrame(); err != nil {
				runErr = err
				a.Stop()
				break loop
			}
		}

		// Sleep for remaining frame time to maintain consistent framerate
		elapsed := time.Since(frameStart)
		if elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				break loop
			}
		}
	}

	a.Stop()
	watchErr := a.group.Wait()
	if runErr != nil {
		return runErr
	}
	return watchErr
}

// Stop signals the Run loop to exit gracefully and stops all watchers.
// Watchers receive the stop signal via stopCh and exit their goroutines.
// Stop is idempotent - multiple calls are safe.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		// Interrupt blocking reader before closing stopCh to wake it up
		if interruptible, ok := a.reader.(InterruptibleReader); ok {
			interruptible.Interrupt()
		}
		close(a.stopCh)
	})
}

// QueueUpdate enqueues a function to run on the main loop.
// Safe to call from any goroutine. Use this for background thread safety.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
		// App is stopping, ignore update
	default:
		// Queue full; drop rather than block the caller
	}
}

// Dispatch routes an event through the app. Resize events resize the
// renderer and schedule a full repaint. Mouse events are hit-tested
// against the instance tree. Key events go through the keymap, then the
// global handler, then the focused instance, then the focus ring.
// Returns true if the event was consumed.
func (a *App) Dispatch(event Event) bool {
	switch ev := event.(type) {
	case ResizeEvent:
		a.renderer.Resize(ev.Width, ev.Height)
		a.lastTree = nil
		a.needsFullRedraw = true
		a.MarkDirty()
		return true

	case MouseEvent:
		return a.dispatchMouse(ev)

	case KeyEvent:
		return a.dispatchKey(ev)

	case PasteEvent:
		if handler, ok := a.focus.Focused().(PasteHandler); ok {
			if handler.HandlePaste(ev.Text) {
				a.MarkDirty()
				return true
			}
		}
		return false
	}
	return false
}

func (a *App) dispatchKey(ke KeyEvent) bool {
	if action, ok := a.keymap.Match(ke); ok {
		if fn, bound := a.actions[action]; bound {
			fn()
			a.MarkDirty()
			return true
		}
	}

	if a.globalKeyHandler != nil && a.globalKeyHandler(ke) {
		a.MarkDirty()
		return true
	}

	if a.focus.Dispatch(ke) {
		a.MarkDirty()
		return true
	}

	// Unconsumed Tab cycles focus.
	if ke.Is(KeyTab) {
		if ke.Mod&ModShift != 0 {
			a.FocusPrev()
		} else {
			a.FocusNext()
		}
		return true
	}
	return false
}

func (a *App) dispatchMouse(me MouseEvent) bool {
	if a.rootInst == nil {
		return false
	}

	switch me.Button {
	case MouseWheelUp, MouseWheelDown:
		delta := wheelScrollLines
		if me.Button == MouseWheelUp {
			delta = -wheelScrollLines
		}
		if vp := scrollableAt(a.rootInst, me.X, me.Y); vp != nil {
			if vp.ScrollBy(delta) {
				a.MarkDirty()
				return true
			}
		}
		return false

	case MouseLeft:
		if me.Action != MousePress {
			return false
		}
		if target := focusableAt(a.rootInst, me.X, me.Y); target != nil {
			a.focus.SetFocus(target)
			a.MarkDirty()
			return true
		}
		return false
	}
	return false
}

// Scrollable is implemented by instances that can scroll their content,
// such as Viewport. Wheel events are routed to the deepest scrollable
// instance under the cursor.
type Scrollable interface {
	// ScrollBy shifts the scroll offset by delta rows. Returns true if
	// the offset changed.
	ScrollBy(delta int) bool
}

// focusableAt returns the deepest focusable instance containing (x, y),
// or nil if none does.
func focusableAt(root Instance, x, y int) Focusable {
	var found Focusable
	walkAt(root, x, y, func(inst Instance) {
		if f, ok := inst.(Focusable); ok && f.IsFocusable() {
			found = f
		}
	})
	return found
}

// scrollableAt returns the deepest scrollable instance containing (x, y).
func scrollableAt(root Instance, x, y int) Scrollable {
	var found Scrollable
	walkAt(root, x, y, func(inst Instance) {
		if s, ok := inst.(Scrollable); ok {
			found = s
		}
	})
	return found
}

// walkAt visits every instance whose laid-out rect contains the point,
// parents before children.
func walkAt(inst Instance, x, y int, fn func(Instance)) {
	if inst == nil {
		return
	}
	if !inst.GetLayout().AbsoluteRect().Contains(x, y) {
		return
	}
	fn(inst)
	for _, child := range inst.Children() {
		walkAt(child, x, y, fn)
	}
}

// readInputEvents reads terminal input in a goroutine and queues events.
func (a *App) readInputEvents() {
	for {
		select {
		case <-a.stopCh:
			return
		default:
		}

		event, ok := a.reader.PollEvent(a.inputLatency)
		if !ok {
			continue
		}

		// Capture event for closure
		ev := event

		select {
		case a.eventQueue <- func() { a.Dispatch(ev) }:
		case <-a.stopCh:
			return
		}
	}
}
