// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package weft

import "github.com/weftui/weft/internal/layout"

// Display selects the layout algorithm for a container's children.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayGrid = layout.DisplayGrid
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirectionRow    = layout.Row
	DirectionColumn = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Track represents the size of one grid column or row.
type Track = layout.Track

// TrackUnit specifies how a Track is interpreted.
type TrackUnit = layout.TrackUnit

const (
	TrackAuto    = layout.TrackAuto
	TrackFixed   = layout.TrackFixed
	TrackPercent = layout.TrackPercent
	TrackFr      = layout.TrackFr
)

// Constraints bounds a node's size during measurement.
type Constraints = layout.Constraints

// Unbounded marks an axis with no maximum constraint.
const Unbounded = layout.Unbounded

// AutoPlacement marks a grid item with no explicit row or column.
const AutoPlacement = layout.AutoPlacement

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

// Measurable is the optional interface for nodes whose natural size depends
// on the constraints they are measured under.
type Measurable = layout.Measurable

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// FixedTrack creates a Track with an absolute cell count.
func FixedTrack(n int) Track {
	return layout.FixedTrack(n)
}

// PercentTrack creates a Track sized as a percentage of the container.
func PercentTrack(p float64) Track {
	return layout.PercentTrack(p)
}

// AutoTrack creates a Track sized to its largest item.
func AutoTrack() Track {
	return layout.AutoTrack()
}

// FrTrack creates a Track taking a weighted share of leftover space.
func FrTrack(weight float64) Track {
	return layout.FrTrack(weight)
}

// Tight creates Constraints that force an exact size.
func Tight(width, height int) Constraints {
	return layout.Tight(width, height)
}

// Loose creates Constraints with zero minimums and the given maximums.
func Loose(width, height int) Constraints {
	return layout.Loose(width, height)
}

// Unconstrained creates Constraints with no bounds at all.
func Unconstrained() Constraints {
	return layout.Unconstrained()
}

// DefaultLayoutStyle returns a Style with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate performs flex and grid layout on the given tree, filling the
// available area.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	layout.Calculate(root, availableWidth, availableHeight)
}

// CalculateConstrained performs layout on the given tree under explicit
// constraints.
func CalculateConstrained(root Layoutable, c Constraints) {
	layout.CalculateConstrained(root, c)
}

// MeasureNode reports the size the node would take under the given
// constraints without committing a layout.
func MeasureNode(node Layoutable, c Constraints) Size {
	return layout.Measure(node, c)
}

// InsetRect returns a new Rect inset by the given amounts on each edge.
// The order follows CSS convention: top, right, bottom, left.
// This is a convenience function that wraps Rect.Inset(Edges).
func InsetRect(r Rect, top, right, bottom, left int) Rect {
	return r.Inset(layout.EdgeTRBL(top, right, bottom, left))
}

// InsetUniform returns a new Rect inset by n on all edges.
// This is a convenience function that wraps Rect.Inset(Edges).
func InsetUniform(r Rect, n int) Rect {
	return r.Inset(layout.EdgeAll(n))
}
