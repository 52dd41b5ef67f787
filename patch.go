package weft

// Patch is one edit produced by diffing two frame trees. The set of
// implementations is closed: InsertNode, RemoveNode, ReplaceNode,
// MoveNode, and UpdateProps.
type Patch interface {
	// DirtyRects returns the screen rectangles the patch damages. Every
	// returned rect must be cleared before the new frame's content is
	// drawn into it.
	DirtyRects() []Rect

	isPatch()
}

// InsertNode adds a subtree with no counterpart in the old frame.
type InsertNode struct {
	Node *Node
}

// RemoveNode deletes a subtree with no counterpart in the new frame.
type RemoveNode struct {
	Node *Node
}

// ReplaceNode swaps an old subtree for a structurally incompatible new
// one: the node kind or tag changed, or a child list could not be
// reconciled.
type ReplaceNode struct {
	Old *Node
	New *Node
}

// MoveNode records a node whose screen rectangle or effective clip
// changed while its structure and props did not.
type MoveNode struct {
	Old *Node
	New *Node
}

// UpdateProps records a node whose props changed in place. Keys holds the
// changed prop keys, sorted; a text node's content change reports the
// synthetic PropContent key.
type UpdateProps struct {
	Old  *Node
	New  *Node
	Keys []string
}

func (p InsertNode) isPatch()  {}
func (p RemoveNode) isPatch()  {}
func (p ReplaceNode) isPatch() {}
func (p MoveNode) isPatch()    {}
func (p UpdateProps) isPatch() {}

// DirtyRects returns the rect of every node in the inserted subtree.
func (p InsertNode) DirtyRects() []Rect {
	return subtreeRects(p.Node, nil)
}

// DirtyRects returns the rect of every node in the removed subtree.
func (p RemoveNode) DirtyRects() []Rect {
	return subtreeRects(p.Node, nil)
}

// DirtyRects returns the rects of both full subtrees.
func (p ReplaceNode) DirtyRects() []Rect {
	return subtreeRects(p.New, subtreeRects(p.Old, nil))
}

// DirtyRects returns the rects of both full subtrees, covering every cell
// the node occupied and every cell it now occupies.
func (p MoveNode) DirtyRects() []Rect {
	return subtreeRects(p.New, subtreeRects(p.Old, nil))
}

// DirtyRects returns the node's old and new rects. Children report their
// own patches, so subtree rects are not needed here.
func (p UpdateProps) DirtyRects() []Rect {
	return []Rect{p.Old.Rect, p.New.Rect}
}

// subtreeRects appends the rect of root and every node under it.
func subtreeRects(root *Node, rects []Rect) []Rect {
	if root == nil {
		return rects
	}
	rects = append(rects, root.Rect)
	for _, c := range root.Children {
		rects = subtreeRects(c, rects)
	}
	return rects
}
