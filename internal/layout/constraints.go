package layout

import "math"

// Unbounded marks an axis with no maximum constraint.
const Unbounded = math.MaxInt

// Constraints bound the size a node may resolve to on each axis.
// Minimums are always finite and non-negative; maximums may be Unbounded.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that force an exact size on both axes.
func Tight(width, height int) Constraints {
	width = max(width, 0)
	height = max(height, 0)
	return Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: height,
		MaxHeight: height,
	}
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(width, height int) Constraints {
	return Constraints{
		MaxWidth:  max(width, 0),
		MaxHeight: max(height, 0),
	}
}

// Unconstrained returns constraints with zero minimums and no maximums.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// ConstrainWidth clamps v into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(v int) int {
	if v < c.MinWidth {
		return c.MinWidth
	}
	if v > c.MaxWidth {
		return c.MaxWidth
	}
	return v
}

// ConstrainHeight clamps v into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(v int) int {
	if v < c.MinHeight {
		return c.MinHeight
	}
	if v > c.MaxHeight {
		return c.MaxHeight
	}
	return v
}

// Constrain clamps both dimensions of s into the constraint bounds.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  c.ConstrainWidth(s.Width),
		Height: c.ConstrainHeight(s.Height),
	}
}

// IsTightWidth returns true if the width is forced to a single value.
func (c Constraints) IsTightWidth() bool {
	return c.MinWidth == c.MaxWidth
}

// IsTightHeight returns true if the height is forced to a single value.
func (c Constraints) IsTightHeight() bool {
	return c.MinHeight == c.MaxHeight
}

// IsTight returns true if both axes are forced to a single value.
func (c Constraints) IsTight() bool {
	return c.IsTightWidth() && c.IsTightHeight()
}

// HasBoundedWidth returns true if MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth != Unbounded
}

// HasBoundedHeight returns true if MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight != Unbounded
}

// LoosenWidth returns a copy with MinWidth reset to zero.
func (c Constraints) LoosenWidth() Constraints {
	c.MinWidth = 0
	return c
}

// LoosenHeight returns a copy with MinHeight reset to zero.
func (c Constraints) LoosenHeight() Constraints {
	c.MinHeight = 0
	return c
}

// Loosen returns a copy with both minimums reset to zero.
func (c Constraints) Loosen() Constraints {
	c.MinWidth = 0
	c.MinHeight = 0
	return c
}

// Normalize repairs invalid constraints: negative bounds are raised to
// zero and a maximum below its minimum is raised to the minimum. Returns
// the repaired constraints and whether any repair was needed.
func (c Constraints) Normalize() (Constraints, bool) {
	repaired := false
	if c.MinWidth < 0 {
		c.MinWidth = 0
		repaired = true
	}
	if c.MinHeight < 0 {
		c.MinHeight = 0
		repaired = true
	}
	if c.MaxWidth < c.MinWidth {
		c.MaxWidth = c.MinWidth
		repaired = true
	}
	if c.MaxHeight < c.MinHeight {
		c.MaxHeight = c.MinHeight
		repaired = true
	}
	return c, repaired
}
