package weft

import "github.com/weftui/weft/internal/debug"

// renderFrame runs the declarative pipeline once: rebuild the view tree
// from the root function, reconcile it into instances, lay the instances
// out against the terminal size, emit the node tree, diff it against the
// previous frame, and flush the resulting dirty regions.
//
// A ConfigurationError from reconciliation is returned to the caller; the
// screen keeps its previous frame.
func (a *App) renderFrame() error {
	if a.root == nil {
		return nil
	}

	width, height := a.terminal.Size()
	if rw, rh := a.renderer.Size(); rw != width || rh != height {
		a.renderer.Resize(width, height)
		a.lastTree = nil
		a.needsFullRedraw = true
	}

	view := a.root(a.theme)
	inst, err := a.registry.Reconcile(view)
	if err != nil {
		return err
	}
	a.rootInst = inst

	a.focus.Sync(collectFocusables(inst))

	CalculateConstrained(inst, Tight(width, height))
	tree := inst.RenderNode()

	// Clips must be resolved before diffing: the previous tree carries
	// resolved ClipRects from its own frame, and a fresh tree's zero
	// clips would register as a move on every node.
	ResolveClips(tree, NewRect(0, 0, width, height))

	if a.lastTree == nil || a.needsFullRedraw {
		a.renderer.Draw(tree)
		a.renderer.FlushFull(a.terminal)
		a.needsFullRedraw = false
		a.framePatches = 0
	} else {
		patches := Diff(a.lastTree, tree)
		a.framePatches = len(patches)
		if len(patches) > 0 {
			debug.Log("frame: %d patches", len(patches))
		}
		a.renderer.ApplyPatches(tree, patches)
		a.renderer.Flush(a.terminal)
	}
	a.lastTree = tree
	return nil
}

// RenderFull forces a complete reconcile and repaint of the screen.
// Use this when the terminal may be corrupted by outside writes.
func (a *App) RenderFull() error {
	a.lastTree = nil
	a.needsFullRedraw = true
	return a.renderFrame()
}
