package weft

// MarkDirty signals that the UI needs a new frame.
// Called automatically by State.Set, viewport scrolling, and the event
// dispatcher; call it manually after mutating state the bindings don't see.
func (a *App) MarkDirty() {
	if a == nil {
		panic("weft: nil app in MarkDirty")
	}
	a.dirty.Store(true)
}

// checkAndClearDirty returns true if dirty and clears the flag.
// Called by the main loop after processing events.
func (a *App) checkAndClearDirty() bool {
	return a.dirty.Swap(false)
}

// resetDirty clears the dirty flag without rendering.
func (a *App) resetDirty() {
	a.dirty.Store(false)
}
