package weft

import "github.com/weftui/weft/internal/debug"

// FocusManager tracks focus state for the focusable instances discovered
// in the current frame's instance tree. It does NOT automatically handle
// Tab navigation; the app controls when focus moves by calling Next(),
// Prev(), or SetFocus().
type FocusManager struct {
	instances []Focusable // Focusable instances in tree order
	current   int         // Index of currently focused instance (-1 = none)
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		current: -1,
	}
}

// Sync replaces the focus ring with the focusables discovered this frame,
// in tree order. The currently focused instance keeps focus if it is
// still present; otherwise focus moves to the first focusable instance.
func (f *FocusManager) Sync(instances []Focusable) {
	prev := f.Focused()
	f.instances = instances
	f.current = -1

	if prev != nil {
		for i, inst := range instances {
			if inst == prev {
				f.current = i
				return
			}
		}
		// The focused instance was disposed this generation; pick a new
		// target below.
		debug.Log("FocusManager.Sync: focused instance dropped, refocusing")
	}

	for i, inst := range instances {
		if inst.IsFocusable() {
			f.current = i
			inst.Focus()
			return
		}
	}
}

// Focused returns the currently focused instance, or nil if none.
func (f *FocusManager) Focused() Focusable {
	if f.current < 0 || f.current >= len(f.instances) {
		return nil
	}
	return f.instances[f.current]
}

// SetFocus moves focus to the specified instance.
// Does nothing if the instance is not in the ring or not focusable.
func (f *FocusManager) SetFocus(inst Focusable) {
	idx := -1
	for i, e := range f.instances {
		if e == inst {
			idx = i
			break
		}
	}
	if idx == -1 || !inst.IsFocusable() {
		return
	}

	if f.current >= 0 && f.current < len(f.instances) && f.current != idx {
		f.instances[f.current].Blur()
	}

	f.current = idx
	inst.Focus()
}

// Next moves focus to the next focusable instance.
// Wraps around to the first instance if at the end.
// Does nothing if there are no focusable instances.
func (f *FocusManager) Next() {
	if len(f.instances) == 0 {
		return
	}

	if f.current >= 0 && f.current < len(f.instances) {
		f.instances[f.current].Blur()
	}

	startIdx := f.current
	if startIdx < 0 {
		startIdx = -1
	}

	for i := 0; i < len(f.instances); i++ {
		nextIdx := (startIdx + 1 + i) % len(f.instances)
		if f.instances[nextIdx].IsFocusable() {
			f.current = nextIdx
			f.instances[nextIdx].Focus()
			return
		}
	}

	f.current = -1
}

// Prev moves focus to the previous focusable instance.
// Wraps around to the last instance if at the beginning.
func (f *FocusManager) Prev() {
	if len(f.instances) == 0 {
		return
	}

	if f.current >= 0 && f.current < len(f.instances) {
		f.instances[f.current].Blur()
	}

	startIdx := f.current
	if startIdx < 0 {
		startIdx = 0
	}

	for i := 0; i < len(f.instances); i++ {
		prevIdx := startIdx - 1 - i
		for prevIdx < 0 {
			prevIdx += len(f.instances)
		}
		if f.instances[prevIdx].IsFocusable() {
			f.current = prevIdx
			f.instances[prevIdx].Focus()
			return
		}
	}

	f.current = -1
}

// Dispatch sends a key event to the currently focused instance.
// Returns true if the event was handled.
func (f *FocusManager) Dispatch(ke KeyEvent) bool {
	focused := f.Focused()
	if focused == nil {
		debug.Log("FocusManager.Dispatch: no focused instance")
		return false
	}
	return focused.HandleKey(ke)
}

// collectFocusables walks the instance tree depth-first and returns every
// instance implementing the Focusable capability, in tree order.
func collectFocusables(root Instance) []Focusable {
	var out []Focusable
	var walk func(inst Instance)
	walk = func(inst Instance) {
		if inst == nil {
			return
		}
		if foc, ok := inst.(Focusable); ok {
			out = append(out, foc)
		}
		for _, child := range inst.Children() {
			walk(child)
		}
	}
	walk(root)
	return out
}
