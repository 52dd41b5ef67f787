package weft

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// InputLatencyBlocking is a special value for WithInputLatency that makes
// the event reader block indefinitely until input is available.
// This is more efficient for CPU usage but requires proper interrupt handling.
const InputLatencyBlocking = -1 * time.Millisecond

// App owns the terminal session and drives the declarative frame pipeline:
// the root view function is called with the current theme, reconciled into
// the instance arena, laid out, rendered to a node tree, diffed against the
// previous frame, and flushed as dirty regions.
type App struct {
	terminal Terminal
	reader   EventReader
	renderer *Renderer
	registry *Registry
	focus    *FocusManager

	theme  Theme
	keymap *Keymap

	root     func(Theme) View
	rootInst Instance
	lastTree *Node

	needsFullRedraw bool // Set after resize, cleared after FlushFull
	framePatches    int  // Patch count of the last patch frame, for the debug log
	dirty           atomic.Bool
	batch           batchContext

	// Event loop fields
	eventQueue       chan func()
	stopCh           chan struct{}
	stopOnce         sync.Once
	watchers         []Watcher
	group            errgroup.Group
	actions          map[string]func()
	globalKeyHandler func(KeyEvent) bool // Returns true if event consumed

	// Configuration (set via options)
	inputLatency   time.Duration   // Polling timeout for event reader (default 50ms, -1 for blocking)
	frameDuration  time.Duration   // Duration per frame (default 16ms = 60fps)
	eventQueueSize int             // Capacity of event queue (default 256, used during construction)
	mouseEnabled   bool            // Whether mouse events are enabled
	cursorVisible  bool            // Whether cursor is visible (default false)
	pendingRoot    func(Theme) View // Root to apply after initialization (set by WithRoot)
}

// NewApp creates a new application on stdin/stdout. The terminal is put
// into raw mode and the alternate screen, mouse reporting and bracketed
// paste are enabled, and the cursor is hidden (options can override).
func NewApp(opts ...AppOption) (*App, error) {
	terminal, err := NewANSITerminal(os.Stdout, os.Stdin)
	if err != nil {
		return nil, err
	}

	if err := terminal.EnterRawMode(); err != nil {
		return nil, err
	}

	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		// Clean up terminal state before returning error
		terminal.ExitRawMode()
		return nil, err
	}

	app, err := newApp(terminal, reader, opts)
	if err != nil {
		reader.Close()
		terminal.ExitRawMode()
		return nil, err
	}
	terminal.EnterAltScreen()
	terminal.Clear()
	return app, nil
}

// NewAppWithTerminal creates an App on an explicit terminal and reader.
// This is the entry point for tests (MockTerminal) and for embedding the
// pipeline in another program's screen management. Raw mode and alternate
// screen are not entered; the caller owns the terminal session.
func NewAppWithTerminal(terminal Terminal, reader EventReader, opts ...AppOption) (*App, error) {
	return newApp(terminal, reader, opts)
}

func newApp(terminal Terminal, reader EventReader, opts []AppOption) (*App, error) {
	app := &App{
		terminal:       terminal,
		reader:         reader,
		registry:       NewRegistry(),
		focus:          NewFocusManager(),
		theme:          DefaultTheme(),
		keymap:         NewKeymap(),
		actions:        make(map[string]func()),
		stopCh:         make(chan struct{}),
		inputLatency:   50 * time.Millisecond, // Default polling timeout
		frameDuration:  16 * time.Millisecond, // Default ~60fps
		eventQueueSize: 256,                   // Default queue size
		mouseEnabled:   true,
		cursorVisible:  false,
		batch:          newBatchContext(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	width, height := terminal.Size()
	app.renderer = NewRenderer(width, height)
	app.eventQueue = make(chan func(), app.eventQueueSize)

	if app.mouseEnabled {
		terminal.EnableMouse()
	}
	if !app.cursorVisible {
		terminal.HideCursor()
	}

	// Blocking mode needs a way to wake the reader up on Stop.
	if app.inputLatency < 0 {
		if interruptible, ok := reader.(InterruptibleReader); ok {
			if err := interruptible.EnableInterrupt(); err != nil {
				if app.mouseEnabled {
					terminal.DisableMouse()
				}
				if !app.cursorVisible {
					terminal.ShowCursor()
				}
				return nil, fmt.Errorf("failed to enable interrupt for blocking mode: %w", err)
			}
		}
	}

	if app.pendingRoot != nil {
		app.SetRoot(app.pendingRoot)
		app.pendingRoot = nil
	}

	return app, nil
}

// SetRoot sets the view function called at the start of every frame.
// The function receives the active theme and returns the declaration tree
// for this frame; instances persist across calls through the registry.
func (a *App) SetRoot(root func(Theme) View) {
	a.root = root
	a.lastTree = nil
	a.needsFullRedraw = true
	a.MarkDirty()
}

// BindAction associates a handler with a keymap action name. Key events
// matching the bound chord run the handler on the main loop.
func (a *App) BindAction(action string, fn func()) {
	a.actions[action] = fn
}

// AddWatcher registers a watcher to be supervised by Run. Watchers added
// after Run has started are not picked up.
func (a *App) AddWatcher(w Watcher) {
	a.watchers = append(a.watchers, w)
}

// SetGlobalKeyHandler sets a handler that runs before dispatching to the
// focused instance. If the handler returns true, the event is consumed and
// not dispatched further. Use this for app-level key bindings like quit.
func (a *App) SetGlobalKeyHandler(fn func(KeyEvent) bool) {
	a.globalKeyHandler = fn
}

// Theme returns the active theme.
func (a *App) Theme() Theme {
	return a.theme
}

// SetTheme replaces the active theme. The next frame rebuilds the view
// tree with it and repaints the full screen.
func (a *App) SetTheme(theme Theme) {
	a.theme = theme
	a.needsFullRedraw = true
	a.MarkDirty()
}

// Keymap returns the active keymap for runtime rebinding.
func (a *App) Keymap() *Keymap {
	return a.keymap
}

// SetKeymap replaces the active keymap.
func (a *App) SetKeymap(k *Keymap) {
	if k == nil {
		k = NewKeymap()
	}
	a.keymap = k
}

// Size returns the current terminal size.
func (a *App) Size() (width, height int) {
	return a.terminal.Size()
}

// Terminal returns the underlying terminal.
// Use with caution for advanced use cases.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// Registry returns the instance arena, mainly for inspection in tests.
func (a *App) Registry() *Registry {
	return a.registry
}

// RootInstance returns the instance tree from the last completed frame,
// or nil before the first frame.
func (a *App) RootInstance() Instance {
	return a.rootInst
}

// InstanceByKey returns the mounted instance declared with the given view
// key, or nil if no frame has rendered yet or the key is not in the tree.
// Use it to reach widget state the declarations do not carry, like a text
// input's content.
func (a *App) InstanceByKey(key string) Instance {
	if key == "" {
		return nil
	}
	return instanceByKey(a.rootInst, key)
}

func instanceByKey(inst Instance, key string) Instance {
	if inst == nil {
		return nil
	}
	if inst.Key() == key {
		return inst
	}
	for _, child := range inst.Children() {
		if found := instanceByKey(child, key); found != nil {
			return found
		}
	}
	return nil
}

// FocusNext moves focus to the next focusable instance.
func (a *App) FocusNext() {
	a.focus.Next()
	a.MarkDirty()
}

// FocusPrev moves focus to the previous focusable instance.
func (a *App) FocusPrev() {
	a.focus.Prev()
	a.MarkDirty()
}

// Focused returns the currently focused instance, or nil if none.
func (a *App) Focused() Focusable {
	return a.focus.Focused()
}

// PollEvent reads the next event with a timeout.
// Convenience wrapper around the EventReader.
func (a *App) PollEvent(timeout time.Duration) (Event, bool) {
	return a.reader.PollEvent(timeout)
}

// Close restores the terminal to its original state.
// Must be called when the application exits.
func (a *App) Close() error {
	a.Stop()

	a.registry.Clear()
	a.rootInst = nil
	a.lastTree = nil

	if a.mouseEnabled {
		a.terminal.DisableMouse()
	}
	if !a.cursorVisible {
		a.terminal.ShowCursor()
	}
	a.terminal.ExitAltScreen()

	var firstErr error
	if err := a.reader.Close(); err != nil {
		firstErr = err
	}
	if err := a.terminal.ExitRawMode(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
