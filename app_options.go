package weft

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithInputLatency sets the polling timeout for the event reader.
// Default is 50ms. Use InputLatencyBlocking (-1) for blocking mode.
// A value of 0 is not allowed and will return an error.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *App) error {
		if d == 0 {
			return fmt.Errorf("input latency of 0 (busy polling) is not allowed; use a positive duration or InputLatencyBlocking")
		}
		a.inputLatency = d
		return nil
	}
}

// WithFrameRate sets the target frame rate for the render loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that runs before dispatching to the
// focused instance. If the handler returns true, the event is consumed and
// not dispatched further. Use this for app-level key bindings like quit.
func WithGlobalKeyHandler(fn func(KeyEvent) bool) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = fn
		return nil
	}
}

// WithRoot sets the root view function. The root is applied after the app
// is fully initialized, equivalent to calling SetRoot.
func WithRoot(root func(Theme) View) AppOption {
	return func(a *App) error {
		a.pendingRoot = root
		return nil
	}
}

// WithTheme sets the initial theme. Default is DefaultTheme().
func WithTheme(theme Theme) AppOption {
	return func(a *App) error {
		a.theme = theme
		return nil
	}
}

// WithThemeFile loads the initial theme from a TOML file.
// A missing file falls back to the default theme.
func WithThemeFile(path string) AppOption {
	return func(a *App) error {
		theme, err := LoadTheme(path)
		if err != nil {
			return err
		}
		a.theme = theme
		return nil
	}
}

// WithKeymap sets the initial keymap.
func WithKeymap(k *Keymap) AppOption {
	return func(a *App) error {
		if k == nil {
			return fmt.Errorf("keymap cannot be nil")
		}
		a.keymap = k
		return nil
	}
}

// WithKeymapFile loads the initial keymap from a YAML file.
// A missing file yields an empty keymap.
func WithKeymapFile(path string) AppOption {
	return func(a *App) error {
		k, err := LoadKeymap(path)
		if err != nil {
			return err
		}
		a.keymap = k
		return nil
	}
}

// WithMouse enables mouse event reporting. This is the default.
func WithMouse() AppOption {
	return func(a *App) error {
		a.mouseEnabled = true
		return nil
	}
}

// WithoutMouse disables mouse event reporting.
func WithoutMouse() AppOption {
	return func(a *App) error {
		a.mouseEnabled = false
		return nil
	}
}

// WithCursor keeps the cursor visible during app execution.
// By default, the cursor is hidden.
func WithCursor() AppOption {
	return func(a *App) error {
		a.cursorVisible = true
		return nil
	}
}

// WithWatcher registers a watcher at construction time. Equivalent to
// AddWatcher before Run.
func WithWatcher(w Watcher) AppOption {
	return func(a *App) error {
		if w == nil {
			return fmt.Errorf("watcher cannot be nil")
		}
		a.watchers = append(a.watchers, w)
		return nil
	}
}
