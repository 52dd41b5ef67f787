package weft

import (
	"github.com/weftui/weft/internal/debug"
)

// InstanceState tracks an instance through its lifecycle. Transitions run
// strictly forward: Uninitialized, Initialized, Mounted, Unmounted,
// Disposed. Layout and rendering are valid only while Mounted.
type InstanceState int

const (
	StateUninitialized InstanceState = iota
	StateInitialized
	StateMounted
	StateUnmounted
	StateDisposed
)

// String returns the state name for debug output.
func (s InstanceState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateMounted:
		return "mounted"
	case StateUnmounted:
		return "unmounted"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Instance is the long-lived object behind a view. The registry creates
// one the first time a path appears, feeds it each later frame's
// declaration through Update, and unmounts it when the path disappears.
// Instances participate in layout through Layoutable and emit their
// screen content through RenderNode.
type Instance interface {
	Layoutable

	// Kind echoes the view kind the instance was created for.
	Kind() string
	// Key echoes the view key the instance was declared with, or "".
	Key() string
	// Path is the stable identity the registry resolved the instance at.
	Path() string
	// State returns the lifecycle state.
	State() InstanceState

	// Init binds the path and moves the instance to Initialized.
	Init(path string)
	// Mount moves the instance to Mounted. Only mounted instances lay
	// out and render.
	Mount()
	// Update applies a later frame's declaration. The registry guarantees
	// the view's kind matches.
	Update(v View)
	// Unmount moves the instance to Unmounted after its path disappears.
	Unmount()

	// Children returns the child instances resolved this generation.
	Children() []Instance
	// SetChildren wires the child instances resolved this generation.
	SetChildren(children []Instance)

	// RenderNode emits the instance's subtree with absolute coordinates,
	// or nil if the instance is not mounted.
	RenderNode() *Node
}

// Disposable is the optional capability for instances that hold resources
// beyond their own state: subscriptions, watchers, open handles. The
// registry invokes Dispose after Unmount during the generation sweep.
type Disposable interface {
	Dispose()
}

// Focusable is the optional capability for instances that accept keyboard
// focus.
type Focusable interface {
	// IsFocusable returns whether the instance can currently receive
	// focus. May return false for disabled elements.
	IsFocusable() bool

	// Focus is called when the instance gains focus.
	Focus()

	// Blur is called when the instance loses focus.
	Blur()

	// HandleKey processes a key event while focused. Returns true if the
	// event was consumed, false to allow propagation.
	HandleKey(ke KeyEvent) bool
}

// PasteHandler is the optional capability for focusable instances that
// accept bracketed paste text, delivered as a single event rather than a
// stream of key presses.
type PasteHandler interface {
	// HandlePaste inserts pasted text. Returns true if the text was
	// accepted.
	HandlePaste(text string) bool
}

// baseInstance carries the state every instance shares: identity,
// lifecycle, layout participation, and resolved children. Concrete
// instances embed it and provide IntrinsicSize, Update, and RenderNode.
type baseInstance struct {
	kind  string
	key   string
	path  string
	state InstanceState

	style    LayoutStyle
	layout   LayoutResult
	dirty    bool
	children []Instance
}

func newBaseInstance(kind string) baseInstance {
	return baseInstance{
		kind:  kind,
		style: DefaultLayoutStyle(),
		dirty: true,
	}
}

func (b *baseInstance) Kind() string { return b.kind }
func (b *baseInstance) Key() string { return b.key }
func (b *baseInstance) Path() string { return b.path }
func (b *baseInstance) State() InstanceState { return b.state }

func (b *baseInstance) Init(path string) {
	if b.state != StateUninitialized {
		debug.Log("instance %s: Init in state %s", b.path, b.state)
		return
	}
	b.path = path
	b.state = StateInitialized
}

func (b *baseInstance) Mount() {
	if b.state != StateInitialized {
		debug.Log("instance %s: Mount in state %s", b.path, b.state)
		return
	}
	b.state = StateMounted
}

func (b *baseInstance) Unmount() {
	if b.state != StateMounted {
		debug.Log("instance %s: Unmount in state %s", b.path, b.state)
		return
	}
	b.state = StateUnmounted
}

// Dispose moves the instance to its terminal state. Instances holding
// real resources override it, release them, and call this one.
func (b *baseInstance) Dispose() {
	if b.state != StateUnmounted {
		debug.Log("instance %s: Dispose in state %s", b.path, b.state)
		return
	}
	b.state = StateDisposed
}

func (b *baseInstance) Children() []Instance { return b.children }

func (b *baseInstance) SetChildren(children []Instance) {
	b.children = children
}

// LayoutStyle implements Layoutable.
func (b *baseInstance) LayoutStyle() LayoutStyle { return b.style }

// LayoutChildren implements Layoutable.
func (b *baseInstance) LayoutChildren() []Layoutable {
	if len(b.children) == 0 {
		return nil
	}
	out := make([]Layoutable, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

// SetLayout implements Layoutable.
func (b *baseInstance) SetLayout(l LayoutResult) { b.layout = l }

// GetLayout implements Layoutable.
func (b *baseInstance) GetLayout() LayoutResult { return b.layout }

// IsDirty implements Layoutable.
func (b *baseInstance) IsDirty() bool { return b.dirty }

// SetDirty implements Layoutable.
func (b *baseInstance) SetDirty(dirty bool) { b.dirty = dirty }

// IntrinsicSize implements Layoutable. Containers derive their size from
// children during layout; leaf instances override this.
func (b *baseInstance) IntrinsicSize() (width, height int) { return 0, 0 }

// mounted reports whether rendering and layout are currently valid.
func (b *baseInstance) mounted() bool { return b.state == StateMounted }

// absRect returns the instance's border box in screen coordinates.
func (b *baseInstance) absRect() Rect {
	return b.layout.AbsoluteRect()
}
