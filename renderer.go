package weft

import (
	"strings"
)

// Renderer paints node trees into a double buffer. Draw repaints
// everything; ApplyPatches clears only the dirty regions reported by a
// patch set and repaints the nodes intersecting them. Either way the
// terminal flush stays proportional to the cells that actually changed.
type Renderer struct {
	buf *Buffer
}

// NewRenderer creates a renderer with a buffer of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{buf: NewBuffer(width, height)}
}

// Buffer exposes the underlying double buffer.
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Size returns the current buffer dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.buf.Size()
}

// Resize grows or shrinks the buffer. The next frame should be a full
// Draw; the old content is discarded.
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Draw clears the back buffer and paints the whole tree.
func (r *Renderer) Draw(root *Node) {
	r.buf.Clear()
	if root == nil {
		return
	}
	ResolveClips(root, r.buf.Rect())
	r.paintDirty(root, []Rect{r.buf.Rect()})
}

// ApplyPatches updates the back buffer for a patch set against the new
// tree: each dirty region is cleared and every node intersecting one is
// repainted. Cells outside the dirty regions keep last frame's content.
func (r *Renderer) ApplyPatches(root *Node, patches []Patch) {
	if len(patches) == 0 {
		return
	}

	rects := make([]Rect, 0, len(patches))
	for _, p := range patches {
		for _, d := range p.DirtyRects() {
			d = d.Intersect(r.buf.Rect())
			if !d.IsEmpty() {
				rects = append(rects, d)
			}
		}
	}
	if len(rects) == 0 {
		return
	}

	dirty := mergeDirtyRects(rects)
	for _, d := range dirty {
		r.buf.ClearRect(d)
	}
	if root == nil {
		return
	}
	ResolveClips(root, r.buf.Rect())
	r.paintDirty(root, dirty)
}

// Flush sends the changed cells to the terminal and swaps the buffers.
func (r *Renderer) Flush(term Terminal) {
	Render(term, r.buf)
}

// FlushFull redraws every cell, for startup and resize recovery.
func (r *Renderer) FlushFull(term Terminal) {
	RenderFull(term, r.buf)
}

// paintDirty paints the nodes whose visible area intersects the dirty
// set. A subtree whose clip misses every dirty rect is skipped whole:
// descendant clips only ever tighten.
func (r *Renderer) paintDirty(root *Node, dirty []Rect) {
	root.Walk(func(n *Node) bool {
		if !intersectsAny(n.ClipRect, dirty) {
			return false
		}
		if intersectsAny(n.Rect.Intersect(n.ClipRect), dirty) {
			r.paintNode(n)
		}
		return true
	})
}

func (r *Renderer) paintNode(n *Node) {
	switch n.Kind {
	case NodeText:
		r.paintText(n)
	case NodeElement:
		r.paintElement(n)
	}
	// Fragments and clip nodes draw nothing themselves.
}

func (r *Renderer) paintText(n *Node) {
	style, _ := n.Props.GetStyle(PropStyle)
	clip := n.ClipRect.Intersect(n.Rect)
	if clip.IsEmpty() {
		return
	}
	y := n.Rect.Y
	for _, line := range strings.Split(n.Content, "\n") {
		r.buf.SetStringClipped(n.Rect.X, y, line, style, clip)
		y++
	}
}

func (r *Renderer) paintElement(n *Node) {
	rect, clip := n.Rect, n.ClipRect

	if bg, ok := n.Props.GetStyle(PropBackground); ok {
		r.buf.Fill(rect.Intersect(clip), ' ', bg)
	}

	border, ok := n.Props.GetBorder(PropBorder)
	if !ok || border == BorderNone {
		return
	}
	style, _ := n.Props.GetStyle(PropBorderStyle)
	if g, ok := n.Props.GetGradient(PropBorderGradient); ok {
		DrawBoxGradientClipped(r.buf, rect, border, g, style, clip)
	} else {
		DrawBoxClipped(r.buf, rect, border, style, clip)
	}

	if title, ok := n.Props.GetString(PropTitle); ok && title != "" {
		r.paintTitle(rect, title, style, clip)
	}
}

// paintTitle centers the title in the top border, truncated to the
// border's interior width.
func (r *Renderer) paintTitle(rect Rect, title string, style Style, clip Rect) {
	available := rect.Width - 2
	if available <= 0 {
		return
	}

	width := 0
	runes := make([]rune, 0, len(title))
	for _, ch := range title {
		w := RuneWidth(ch)
		if width+w > available {
			break
		}
		runes = append(runes, ch)
		width += w
	}
	if len(runes) == 0 {
		return
	}

	x := rect.X + 1 + (available-width)/2
	r.buf.SetStringClipped(x, rect.Y, string(runes), style, clip)
}

// mergeDirtyRects coalesces overlapping and touching rectangles. A merged
// rect is the union bounding box, which may cover cells neither input
// did; the caller clears and repaints the full merged set.
func mergeDirtyRects(rects []Rect) []Rect {
	merged := append([]Rect(nil), rects...)
	for {
		combined := false
		for i := 0; i < len(merged) && !combined; i++ {
			for j := i + 1; j < len(merged); j++ {
				if merged[i].Intersects(merged[j].Outset(EdgeAll(1))) {
					merged[i] = merged[i].Union(merged[j])
					merged = append(merged[:j], merged[j+1:]...)
					combined = true
					break
				}
			}
		}
		if !combined {
			return merged
		}
	}
}

func intersectsAny(r Rect, rects []Rect) bool {
	for _, d := range rects {
		if r.Intersects(d) {
			return true
		}
	}
	return false
}
