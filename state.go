package weft

import (
	"sync"
	"sync/atomic"

	"github.com/weftui/weft/internal/debug"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

func newBatchContext() batchContext {
	return batchContext{
		pending: make(map[uint64]func()),
	}
}

// globalBindingID generates unique binding IDs across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes. It drives
// the view functions an app rebuilds each frame: Set marks the owning
// app dirty so the next frame re-reconciles.
//
// Thread safety rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the main event loop
//   - For background updates, use channel watchers or App.QueueUpdate()
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	app      *App
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewState creates a state bound to the provided app.
//
// Example:
//
//	count := weft.NewState(app, 0)       // *State[int]
//	name := weft.NewState(app, "hello")  // *State[string]
func NewState[T any](app *App, initial T) *State[T] {
	if app == nil {
		panic("weft: nil app in NewState")
	}
	return &State[T]{
		value: initial,
		app:   app,
	}
}

// Get returns the current value. Safe to call from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value, marks the app dirty, and notifies all bindings.
//
// IMPORTANT: Must be called from the main loop only. For background
// updates, use app.QueueUpdate() or channel watchers.
//
// If called within a Batch(), binding execution is deferred until the
// batch completes.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	// Copy active bindings while holding the lock and drop inactive
	// ones so unbound bindings do not accumulate.
	activeBindings := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			activeBindings = append(activeBindings, b)
		}
	}
	s.bindings = activeBindings
	app := s.app
	s.mu.Unlock()

	app.MarkDirty()

	batch := &app.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	isBatching := batch.depth > 0
	if isBatching {
		// Defer binding execution. Later Set() calls to the same
		// binding overwrite with the new value; order tracks the first
		// occurrence so execution is deterministic.
		for _, b := range activeBindings {
			bindingID := b.id
			bindingFn := b.fn
			capturedValue := v
			if _, exists := batch.pending[bindingID]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, bindingID)
			}
			batch.pending[bindingID] = func() { bindingFn(capturedValue) }
		}
	}
	batch.mu.Unlock()

	if !isBatching {
		for _, b := range activeBindings {
			b.fn(v)
		}
	} else {
		debug.Log("State.Set: deferred %d bindings (batching)", len(activeBindings))
	}
}

// Update applies a function to the current value and sets the result.
//
// Example:
//
//	count.Update(func(v int) int { return v + 1 })
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers a function to be called when the value changes.
// Returns an Unbind handle to remove the binding.
//
// Bindings are executed in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch executes fn and defers all binding callbacks until fn returns.
// Use this when updating multiple states to avoid redundant work.
//
// When the same binding is triggered multiple times during a batch,
// it only executes once with the final value. Bindings run in the order
// they were first triggered. Nested Batch calls are supported; bindings
// only fire when the outermost Batch completes.
//
// If fn panics, the batch state is cleaned up before the panic
// propagates.
func (a *App) Batch(fn func()) {
	if a == nil {
		panic("weft: nil app in Batch")
	}
	batch := &a.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		shouldExecute := batch.depth == 0 && len(batch.pending) > 0
		var pendingCallbacks []func()
		if shouldExecute {
			// Collect callbacks in the order they were first triggered
			pendingCallbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if callback, exists := batch.pending[id]; exists {
					pendingCallbacks = append(pendingCallbacks, callback)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		// Execute callbacks outside the lock
		if shouldExecute {
			for _, callback := range pendingCallbacks {
				callback()
			}
		}
	}()

	fn()
}
