package weft

import (
	"github.com/weftui/weft/internal/debug"
)

var (
	_ View       = Viewport{}
	_ Parent     = Viewport{}
	_ Keyed      = Viewport{}
	_ Instance   = (*viewportInstance)(nil)
	_ Focusable  = (*viewportInstance)(nil)
	_ Measurable = (*viewportInstance)(nil)
)

// Viewport declares a vertically scrollable region. Content taller than
// the viewport is clipped and revealed by scrolling; the scroll offset
// lives on the instance and survives re-declaration.
type Viewport struct {
	// Children are stacked top to bottom inside the scrollable content.
	Children []View

	// Gap is the spacing between stacked children.
	Gap int

	Width  Value
	Height Value
	Grow   float64

	Key string
}

func (v Viewport) Kind() string { return "viewport" }

func (v Viewport) ViewKey() string { return v.Key }

func (v Viewport) ChildViews() []View { return v.Children }

func (v Viewport) CreateInstance() Instance {
	inst := &viewportInstance{baseInstance: newBaseInstance("viewport")}
	inst.applyConfig(v)
	return inst
}

// viewportInstance is a layout boundary: the outer engine sizes the
// viewport box as a leaf, and the instance runs its own layout pass over
// the content with unbounded height. Children therefore take their
// natural height instead of being shrunk to fit.
type viewportInstance struct {
	baseInstance

	gap     int
	scrollY int
	focused bool

	// contentHeight is the laid-out content height from the last render.
	contentHeight int
}

func (v *viewportInstance) applyConfig(decl Viewport) {
	v.gap = decl.Gap
	v.key = decl.Key

	style := DefaultLayoutStyle()
	style.Width = decl.Width
	style.Height = decl.Height
	style.FlexGrow = decl.Grow
	v.style = style
}

func (v *viewportInstance) Update(view View) {
	decl, ok := view.(Viewport)
	if !ok {
		debug.Log("viewport %s: update with %T declaration", v.Path(), view)
		return
	}
	changed := v.gap != decl.Gap ||
		v.style.Width != decl.Width ||
		v.style.Height != decl.Height ||
		v.style.FlexGrow != decl.Grow
	v.applyConfig(decl)
	if changed {
		v.SetDirty(true)
	}
}

// LayoutChildren hides the content from the outer engine. The content is
// laid out internally during rendering.
func (v *viewportInstance) LayoutChildren() []Layoutable { return nil }

// Measure reports the content's natural size so an auto-sized viewport
// wraps its content.
func (v *viewportInstance) Measure(c Constraints) Size {
	return MeasureNode(v.contentRoot(), c)
}

// contentRoot wraps the child instances in a column for the internal
// layout pass.
func (v *viewportInstance) contentRoot() *viewportContent {
	style := DefaultLayoutStyle()
	style.Direction = DirectionColumn
	style.Gap = v.gap

	children := v.Children()
	items := make([]Layoutable, 0, len(children))
	for _, child := range children {
		items = append(items, child)
	}
	return &viewportContent{style: style, children: items}
}

// ScrollOffset returns the current scroll position in rows.
func (v *viewportInstance) ScrollOffset() int { return v.scrollY }

// ContentHeight returns the laid-out content height from the last render.
func (v *viewportInstance) ContentHeight() int { return v.contentHeight }

// MaxScroll returns the largest valid scroll offset.
func (v *viewportInstance) MaxScroll() int {
	m := v.contentHeight - v.absRect().Height
	if m < 0 {
		return 0
	}
	return m
}

// ScrollTo jumps to the given offset, clamped to the valid range.
// Returns true when the offset changed.
func (v *viewportInstance) ScrollTo(y int) bool {
	y = v.clampScroll(y)
	if y == v.scrollY {
		return false
	}
	v.scrollY = y
	v.SetDirty(true)
	return true
}

// ScrollBy moves the offset by delta rows, clamped to the valid range.
func (v *viewportInstance) ScrollBy(delta int) bool {
	return v.ScrollTo(v.scrollY + delta)
}

// ScrollToBottom jumps to the end of the content.
func (v *viewportInstance) ScrollToBottom() bool {
	return v.ScrollTo(v.MaxScroll())
}

func (v *viewportInstance) clampScroll(y int) int {
	if y < 0 {
		return 0
	}
	if m := v.MaxScroll(); y > m {
		return m
	}
	return y
}

func (v *viewportInstance) IsFocusable() bool { return true }

func (v *viewportInstance) Focus() {
	v.focused = true
	v.SetDirty(true)
}

func (v *viewportInstance) Blur() {
	v.focused = false
	v.SetDirty(true)
}

// HandleKey scrolls on arrow and page keys. A key that cannot move the
// offset any further is not consumed, so it can bubble to an outer
// scrollable.
func (v *viewportInstance) HandleKey(ke KeyEvent) bool {
	page := v.absRect().Height - 1
	if page < 1 {
		page = 1
	}
	switch ke.Key {
	case KeyUp:
		return v.ScrollBy(-1)
	case KeyDown:
		return v.ScrollBy(1)
	case KeyPageUp:
		return v.ScrollBy(-page)
	case KeyPageDown:
		return v.ScrollBy(page)
	case KeyHome:
		return v.ScrollTo(0)
	case KeyEnd:
		return v.ScrollToBottom()
	}
	return false
}

func (v *viewportInstance) RenderNode() *Node {
	if !v.mounted() {
		return nil
	}
	rect := v.absRect()
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}

	content := v.contentRoot()
	CalculateConstrained(content, Constraints{
		MinWidth:  rect.Width,
		MaxWidth:  rect.Width,
		MaxHeight: Unbounded,
	})
	v.contentHeight = content.GetLayout().Rect.Height
	v.scrollY = v.clampScroll(v.scrollY)

	var nodes []*Node
	for _, child := range v.Children() {
		n := child.RenderNode()
		if n == nil {
			continue
		}
		offsetNode(n, rect.X, rect.Y-v.scrollY)
		nodes = append(nodes, n)
	}
	return NewClipNode(rect, nodes...).WithKey(v.key)
}

// offsetNode translates a rendered subtree by (dx, dy).
func offsetNode(n *Node, dx, dy int) {
	n.Walk(func(m *Node) bool {
		m.Rect = m.Rect.Translate(dx, dy)
		return true
	})
}

// viewportContent is the synthetic root for the internal layout pass.
type viewportContent struct {
	style    LayoutStyle
	layout   LayoutResult
	dirty    bool
	children []Layoutable
}

func (c *viewportContent) LayoutStyle() LayoutStyle { return c.style }

func (c *viewportContent) LayoutChildren() []Layoutable { return c.children }

func (c *viewportContent) SetLayout(l LayoutResult) { c.layout = l }

func (c *viewportContent) GetLayout() LayoutResult { return c.layout }

func (c *viewportContent) IsDirty() bool { return c.dirty }

func (c *viewportContent) SetDirty(dirty bool) { c.dirty = dirty }

func (c *viewportContent) IntrinsicSize() (width, height int) { return 0, 0 }
