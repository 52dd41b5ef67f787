package weft

// NodeKind identifies the variant of a Node.
type NodeKind int

const (
	// NodeText is a run of styled text.
	NodeText NodeKind = iota
	// NodeElement is a tagged container with props and children.
	NodeElement
	// NodeFragment groups children without geometry of its own beyond
	// their bounding box.
	NodeFragment
	// NodeClip restricts drawing of its children to its rectangle.
	NodeClip
)

// String returns the kind name for debug output.
func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeElement:
		return "element"
	case NodeFragment:
		return "fragment"
	case NodeClip:
		return "clip"
	default:
		return "unknown"
	}
}

// Node is one node of a frame's declaration tree. A tree is built fresh
// every frame and never mutated afterward; diffing the previous frame's
// tree against the new one yields the patches the renderer applies.
//
// Rect is the node's absolute screen rectangle. ClipRect is the effective
// clip inherited from the nearest enclosing clip node; ResolveClips fills
// it in on a finished tree.
type Node struct {
	Kind    NodeKind
	Key     string // optional identity for child reconciliation
	Tag     string // element tag, empty for other kinds
	Content string // text content, empty for other kinds
	Props   Props

	Children []*Node

	Rect     Rect
	ClipRect Rect
}

// NewTextNode creates a text node occupying the given screen rect.
func NewTextNode(content string, rect Rect) *Node {
	return &Node{
		Kind:    NodeText,
		Content: content,
		Rect:    rect,
	}
}

// NewElementNode creates an element node. The rect is the element's
// absolute screen rectangle as resolved by layout.
func NewElementNode(tag string, rect Rect, props Props, children ...*Node) *Node {
	return &Node{
		Kind:     NodeElement,
		Tag:      tag,
		Props:    props,
		Children: children,
		Rect:     rect,
	}
}

// NewFragmentNode groups children under one node. Its rect is the union of
// its children's rects.
func NewFragmentNode(children ...*Node) *Node {
	n := &Node{
		Kind:     NodeFragment,
		Children: children,
	}
	for i, c := range children {
		if i == 0 {
			n.Rect = c.Rect
			continue
		}
		n.Rect = n.Rect.Union(c.Rect)
	}
	return n
}

// NewClipNode creates a clip node. Children draw only inside the clip
// rectangle; the node's own rect is the clip rectangle itself.
func NewClipNode(clip Rect, children ...*Node) *Node {
	return &Node{
		Kind:     NodeClip,
		Children: children,
		Rect:     clip,
	}
}

// WithKey sets the node's reconciliation key and returns the node.
// Keys let siblings survive reorders; they must be unique within one
// child list.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// Walk visits n and its descendants depth-first in declaration order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// ResolveClips fills in the effective clip rect of every node under root:
// the screen intersected with each enclosing clip node's rectangle. Call
// it once on a finished tree, before diffing or drawing.
func ResolveClips(root *Node, screen Rect) {
	resolveClips(root, screen)
}

func resolveClips(n *Node, clip Rect) {
	if n == nil {
		return
	}
	if n.Kind == NodeClip {
		clip = clip.Intersect(n.Rect)
	}
	n.ClipRect = clip
	for _, c := range n.Children {
		resolveClips(c, clip)
	}
}
