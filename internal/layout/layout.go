package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box, positioned relative to the parent's content
	// origin. The sizing pass writes it; the positioning pass leaves it
	// untouched. Use for bounds within the parent.
	Rect Rect

	// ContentRect is Rect minus padding, in the same relative coordinate
	// space. Children are placed within it.
	ContentRect Rect

	// AbsoluteX and AbsoluteY are the border box's screen position,
	// resolved by the positioning pass after all sizes are final.
	AbsoluteX int
	AbsoluteY int
}

// AbsoluteRect returns the border box in screen coordinates.
func (l Layout) AbsoluteRect() Rect {
	return Rect{X: l.AbsoluteX, Y: l.AbsoluteY, Width: l.Rect.Width, Height: l.Rect.Height}
}

// AbsoluteContentRect returns the content box in screen coordinates.
func (l Layout) AbsoluteContentRect() Rect {
	dx := l.ContentRect.X - l.Rect.X
	dy := l.ContentRect.Y - l.Rect.Y
	return Rect{
		X:      l.AbsoluteX + dx,
		Y:      l.AbsoluteY + dy,
		Width:  l.ContentRect.Width,
		Height: l.ContentRect.Height,
	}
}
