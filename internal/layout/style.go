package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Display selects the layout algorithm a container applies to its children.
type Display uint8

const (
	DisplayFlex Display = iota // Linear row/column layout
	DisplayGrid                // Two-dimensional track layout
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis,
// and how grid items are placed within their cell.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// AutoPlacement marks a grid item with no explicit row/column, to be
// auto-placed by the occupancy scan.
const AutoPlacement = -1

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Container properties
	Display        Display
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children (flex main axis only)

	// Grid container properties
	Columns      []Track
	Rows         []Track
	ColumnGap    int
	RowGap       int
	JustifyItems Align // Horizontal placement of items within their cell

	// Flex item properties
	FlexBasis  Value   // Natural main-axis size before grow/shrink (Auto = measure content)
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Grid item properties
	GridRow     int    // Explicit row index, or AutoPlacement
	GridColumn  int    // Explicit column index, or AutoPlacement
	RowSpan     int    // Number of rows to span (minimum 1)
	ColumnSpan  int    // Number of columns to span (minimum 1)
	JustifySelf *Align // Override parent's JustifyItems (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:        Auto(),
		Height:       Auto(),
		MinWidth:     Fixed(0),
		MinHeight:    Fixed(0),
		MaxWidth:     Auto(), // No maximum
		MaxHeight:    Auto(), // No maximum
		Display:      DisplayFlex,
		Direction:    Row,
		AlignItems:   AlignStretch,
		JustifyItems: AlignStretch,
		FlexBasis:    Auto(),
		FlexShrink:   1.0,
		GridRow:      AutoPlacement,
		GridColumn:   AutoPlacement,
		RowSpan:      1,
		ColumnSpan:   1,
	}
}
