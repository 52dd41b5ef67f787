package layout

import (
	"github.com/weftui/weft/internal/debug"
)

// Calculate performs layout on the tree rooted at root within the given
// available space. The root resolves Auto dimensions to the full available
// space, so a default-styled root fills the terminal.
//
// Layout runs in two passes: a sizing pass resolves every node's Layout
// with positions relative to its parent's content box, then a positioning
// pass resolves absolute screen coordinates.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}
	availableWidth = sanitize(availableWidth)
	availableHeight = sanitize(availableHeight)

	style := root.LayoutStyle()
	w := clampDim(style.Width.Resolve(availableWidth, availableWidth),
		style.MinWidth, style.MaxWidth, availableWidth)
	h := clampDim(style.Height.Resolve(availableHeight, availableHeight),
		style.MinHeight, style.MaxHeight, availableHeight)

	CalculateConstrained(root, Tight(w, h))
}

// CalculateConstrained performs layout under explicit root constraints.
func CalculateConstrained(root Layoutable, c Constraints) {
	if root == nil {
		return
	}
	norm, repaired := c.Normalize()
	if repaired {
		debug.Log("layout: repaired invalid root constraints %+v", c)
	}
	sizeNode(root, norm)
	positionNode(root, 0, 0)
}

// Measure returns the size the tree rooted at node would resolve to under
// the given constraints, without committing any layout.
func Measure(node Layoutable, c Constraints) Size {
	if node == nil {
		return Size{}
	}
	return measureNode(node, c)
}

// sizeNode resolves the node's size under the given constraints, commits
// its Layout (positioned at the parent content origin until the parent
// places it), and recursively lays out its children.
func sizeNode(node Layoutable, c Constraints) Size {
	norm, repaired := c.Normalize()
	if repaired {
		debug.Log("layout: repaired invalid constraints %+v", c)
	}

	style := node.LayoutStyle()
	children := layoutableChildren(node)

	var size Size
	switch {
	case len(children) == 0:
		size = sizeLeaf(node, style, norm)
	case style.Display == DisplayGrid:
		size = sizeGrid(node, style, children, norm)
	default:
		size = sizeFlex(node, style, children, norm)
	}
	node.SetDirty(false)
	return size
}

// sizeLeaf resolves a childless node: explicit dimensions resolve against
// the constraint maximums, Auto dimensions come from the node's measured
// natural size, and the result is clamped into the constraints.
func sizeLeaf(node Layoutable, style Style, c Constraints) Size {
	refW, refH := constraintRefs(c)

	w, wOK := resolveExplicit(style.Width, style.MinWidth, style.MaxWidth, refW)
	h, hOK := resolveExplicit(style.Height, style.MinHeight, style.MaxHeight, refH)
	if !wOK || !hOK {
		nat := naturalSize(node, c)
		if !wOK {
			w = clampDim(nat.Width, style.MinWidth, style.MaxWidth, refW)
		}
		if !hOK {
			h = clampDim(nat.Height, style.MinHeight, style.MaxHeight, refH)
		}
	}

	size := c.Constrain(Size{Width: w, Height: h})
	commitLayout(node, size, style.Padding)
	return size
}

// measureNode returns the natural size of a subtree under constraints
// without writing any layout.
func measureNode(node Layoutable, c Constraints) Size {
	norm, _ := c.Normalize()
	style := node.LayoutStyle()

	if m, ok := node.(Measurable); ok {
		return norm.Constrain(m.Measure(norm))
	}

	refW, refH := constraintRefs(norm)
	w, wOK := resolveExplicit(style.Width, style.MinWidth, style.MaxWidth, refW)
	h, hOK := resolveExplicit(style.Height, style.MinHeight, style.MaxHeight, refH)
	if !wOK || !hOK {
		children := layoutableChildren(node)
		var nat Size
		switch {
		case len(children) == 0:
			iw, ih := node.IntrinsicSize()
			nat = Size{Width: sanitize(iw), Height: sanitize(ih)}
		case style.Display == DisplayGrid:
			nat = measureGridContent(style, children, norm)
		default:
			nat = measureFlexContent(style, children, norm)
		}
		if !wOK {
			w = clampDim(nat.Width, style.MinWidth, style.MaxWidth, refW)
		}
		if !hOK {
			h = clampDim(nat.Height, style.MinHeight, style.MaxHeight, refH)
		}
	}
	return norm.Constrain(Size{Width: w, Height: h})
}

// naturalSize measures a leaf's content size. Elements implementing
// Measurable are measured under loosened constraints; otherwise
// IntrinsicSize is used.
func naturalSize(node Layoutable, c Constraints) Size {
	if m, ok := node.(Measurable); ok {
		return m.Measure(c.Loosen())
	}
	w, h := node.IntrinsicSize()
	return Size{Width: sanitize(w), Height: sanitize(h)}
}

// positionNode resolves absolute screen coordinates for the subtree.
// originX/originY locate the parent's content box on screen.
func positionNode(node Layoutable, originX, originY int) {
	l := node.GetLayout()
	l.AbsoluteX = originX + l.Rect.X
	l.AbsoluteY = originY + l.Rect.Y
	node.SetLayout(l)

	content := l.AbsoluteContentRect()
	for _, child := range layoutableChildren(node) {
		positionNode(child, content.X, content.Y)
	}
}

// placeNode moves a node's committed layout to (x, y) relative to its
// parent's content origin.
func placeNode(node Layoutable, x, y int) {
	l := node.GetLayout()
	dx, dy := x-l.Rect.X, y-l.Rect.Y
	if dx == 0 && dy == 0 {
		return
	}
	l.Rect = l.Rect.Translate(dx, dy)
	l.ContentRect = l.ContentRect.Translate(dx, dy)
	node.SetLayout(l)
}

// commitLayout stores a node's resolved size with the border box at the
// parent content origin. The parent moves it into place afterwards.
func commitLayout(node Layoutable, size Size, padding Edges) {
	r := Rect{Width: size.Width, Height: size.Height}
	content := r.Inset(padding)
	content.Width = sanitize(content.Width)
	content.Height = sanitize(content.Height)

	prev := node.GetLayout()
	node.SetLayout(Layout{
		Rect:        r,
		ContentRect: content,
		AbsoluteX:   prev.AbsoluteX,
		AbsoluteY:   prev.AbsoluteY,
	})
}

// layoutableChildren returns the node's children with nil entries removed.
func layoutableChildren(node Layoutable) []Layoutable {
	children := node.LayoutChildren()
	for _, c := range children {
		if c == nil {
			filtered := make([]Layoutable, 0, len(children))
			for _, cc := range children {
				if cc != nil {
					filtered = append(filtered, cc)
				}
			}
			return filtered
		}
	}
	return children
}

// constraintRefs returns the reference sizes used to resolve percentage
// values, or -1 for an unbounded axis.
func constraintRefs(c Constraints) (int, int) {
	w, h := -1, -1
	if c.HasBoundedWidth() {
		w = c.MaxWidth
	}
	if c.HasBoundedHeight() {
		h = c.MaxHeight
	}
	return w, h
}

// resolveExplicit resolves a styled dimension when it is not Auto.
// Percentages against an indefinite reference behave like Auto.
func resolveExplicit(v, minV, maxV Value, ref int) (int, bool) {
	if v.IsAuto() {
		return 0, false
	}
	if v.Unit == UnitPercent && ref < 0 {
		return 0, false
	}
	return clampDim(v.Resolve(max(ref, 0), 0), minV, maxV, ref), true
}

// clampDim applies min/max Value bounds to a resolved dimension.
// ref is the percentage reference size; negative means indefinite, which
// ignores percentage bounds. A minimum above the maximum wins, and the
// result is never negative.
func clampDim(v int, minV, maxV Value, ref int) int {
	lo := 0
	if !(minV.Unit == UnitPercent && ref < 0) {
		lo = minV.Resolve(max(ref, 0), 0)
	}
	hi := Unbounded
	if !maxV.IsAuto() && !(maxV.Unit == UnitPercent && ref < 0) {
		hi = maxV.Resolve(max(ref, 0), Unbounded)
	}
	if hi < lo {
		hi = lo
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return sanitize(v)
}
