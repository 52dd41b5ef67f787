package layout

import "math"

// gridItem tracks one child's placement through the grid passes.
type gridItem struct {
	node    Layoutable
	style   Style
	row     int
	col     int
	rowSpan int
	colSpan int
}

// occupancy is a growable row-major cell grid used for item placement.
// The column count is fixed; rows grow without bound as items are placed.
type occupancy struct {
	cols  int
	rows  int
	cells []bool
}

func newOccupancy(cols int) *occupancy {
	return &occupancy{cols: max(cols, 1)}
}

func (o *occupancy) ensureRows(n int) {
	if n <= o.rows {
		return
	}
	grown := make([]bool, n*o.cols)
	copy(grown, o.cells)
	o.cells = grown
	o.rows = n
}

// occupied reports whether cell (r, c) is claimed. Rows beyond the current
// bound are free.
func (o *occupancy) occupied(r, c int) bool {
	if r >= o.rows {
		return false
	}
	return o.cells[r*o.cols+c]
}

// free reports whether the block at (r, c) spanning rowSpan x colSpan
// contains no occupied cells. The block must fit within the column bound.
func (o *occupancy) free(r, c, rowSpan, colSpan int) bool {
	if c+colSpan > o.cols {
		return false
	}
	for rr := r; rr < r+rowSpan; rr++ {
		for cc := c; cc < c+colSpan; cc++ {
			if o.occupied(rr, cc) {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) claim(r, c, rowSpan, colSpan int) {
	o.ensureRows(r + rowSpan)
	for rr := r; rr < r+rowSpan; rr++ {
		for cc := c; cc < c+colSpan; cc++ {
			o.cells[rr*o.cols+cc] = true
		}
	}
}

// placeGridItems resolves every child to a cell block. Items with an
// explicit row and column claim their cells first; the rest are
// auto-placed in declaration order by scanning row-major from a moving
// cursor and claiming the first free block that fits. An item explicit on
// only one axis is auto-placed. Returns the items plus the resolved
// column and row counts; columns extend to cover explicit placements and
// rows grow as far as placement requires.
func placeGridItems(style Style, children []Layoutable) ([]gridItem, int, int) {
	colCount := len(style.Columns)
	items := make([]gridItem, 0, len(children))
	for _, child := range children {
		cs := child.LayoutStyle()
		it := gridItem{
			node:    child,
			style:   cs,
			row:     cs.GridRow,
			col:     cs.GridColumn,
			rowSpan: max(cs.RowSpan, 1),
			colSpan: max(cs.ColumnSpan, 1),
		}
		if it.row >= 0 && it.col >= 0 {
			colCount = max(colCount, it.col+it.colSpan)
		}
		items = append(items, it)
	}
	if colCount == 0 {
		colCount = 1
	}
	// A span wider than the grid can never fit; clamp so placement
	// terminates.
	for i := range items {
		items[i].colSpan = min(items[i].colSpan, colCount)
	}

	occ := newOccupancy(colCount)
	for i := range items {
		it := &items[i]
		if it.row >= 0 && it.col >= 0 {
			occ.claim(it.row, it.col, it.rowSpan, it.colSpan)
		}
	}

	curRow, curCol := 0, 0
	for i := range items {
		it := &items[i]
		if it.row >= 0 && it.col >= 0 {
			continue
		}
		r, c := curRow, curCol
		for {
			if c+it.colSpan > colCount {
				r++
				c = 0
				continue
			}
			if occ.free(r, c, it.rowSpan, it.colSpan) {
				break
			}
			c++
		}
		it.row, it.col = r, c
		occ.claim(r, c, it.rowSpan, it.colSpan)
		curRow, curCol = r, c+it.colSpan
		if curCol >= colCount {
			curRow, curCol = r+1, 0
		}
	}

	rowCount := len(style.Rows)
	for i := range items {
		rowCount = max(rowCount, items[i].row+items[i].rowSpan)
	}
	return items, colCount, rowCount
}

// gridPlan holds resolved track sizes and positions for one layout pass.
type gridPlan struct {
	items    []gridItem
	colSizes []int
	rowSizes []int
	colPos   []int
	rowPos   []int
	colGap   int
	rowGap   int
}

// planGrid places items and sizes both track axes. availWidth/availHeight
// are content-box extents; -1 means indefinite. Columns are sized first so
// row naturals can be measured under each item's resolved cell width.
func planGrid(style Style, children []Layoutable, availWidth, availHeight int) gridPlan {
	items, colCount, rowCount := placeGridItems(style, children)
	cols := expandTracks(style.Columns, colCount)
	rows := expandTracks(style.Rows, rowCount)
	colGap := max(style.ColumnGap, 0)
	rowGap := max(style.RowGap, 0)

	colNat := make([]int, colCount)
	for i := range items {
		it := &items[i]
		nat := measureNode(it.node, Unconstrained())
		share := ceilDiv(nat.Width+it.style.Margin.Horizontal(), it.colSpan)
		for cc := it.col; cc < it.col+it.colSpan; cc++ {
			colNat[cc] = max(colNat[cc], share)
		}
	}
	colSizes := trackSizes(cols, availWidth, colGap, colNat)
	colPos := prefixPositions(colSizes, colGap)

	rowNat := make([]int, rowCount)
	for i := range items {
		it := &items[i]
		cellW := spanExtent(colSizes, it.col, it.colSpan, colGap)
		inner := sanitize(cellW - it.style.Margin.Horizontal())
		nat := measureNode(it.node, Constraints{MaxWidth: inner, MaxHeight: Unbounded})
		share := ceilDiv(nat.Height+it.style.Margin.Vertical(), it.rowSpan)
		for rr := it.row; rr < it.row+it.rowSpan; rr++ {
			rowNat[rr] = max(rowNat[rr], share)
		}
	}
	rowSizes := trackSizes(rows, availHeight, rowGap, rowNat)
	rowPos := prefixPositions(rowSizes, rowGap)

	return gridPlan{
		items:    items,
		colSizes: colSizes,
		rowSizes: rowSizes,
		colPos:   colPos,
		rowPos:   rowPos,
		colGap:   colGap,
		rowGap:   rowGap,
	}
}

// sizeGrid lays out children on a two-dimensional track grid.
func sizeGrid(node Layoutable, style Style, children []Layoutable, c Constraints) Size {
	padding := style.Padding
	refW, refH := constraintRefs(c)

	ownW, wOK := resolveExplicit(style.Width, style.MinWidth, style.MaxWidth, refW)
	ownH, hOK := resolveExplicit(style.Height, style.MinHeight, style.MaxHeight, refH)
	if !wOK && c.IsTightWidth() {
		ownW, wOK = c.MinWidth, true
	}
	if !hOK && c.IsTightHeight() {
		ownH, hOK = c.MinHeight, true
	}

	availW, availH := -1, -1
	if wOK {
		availW = sanitize(ownW - padding.Horizontal())
	} else if c.HasBoundedWidth() {
		availW = sanitize(c.MaxWidth - padding.Horizontal())
	}
	if hOK {
		availH = sanitize(ownH - padding.Vertical())
	} else if c.HasBoundedHeight() {
		availH = sanitize(c.MaxHeight - padding.Vertical())
	}

	plan := planGrid(style, children, availW, availH)

	// Size and place each item within its cell block.
	for i := range plan.items {
		it := &plan.items[i]
		cellX := plan.colPos[it.col]
		cellY := plan.rowPos[it.row]
		cellW := spanExtent(plan.colSizes, it.col, it.colSpan, plan.colGap)
		cellH := spanExtent(plan.rowSizes, it.row, it.rowSpan, plan.rowGap)
		innerW := sanitize(cellW - it.style.Margin.Horizontal())
		innerH := sanitize(cellH - it.style.Margin.Vertical())

		justify := style.JustifyItems
		if it.style.JustifySelf != nil {
			justify = *it.style.JustifySelf
		}
		alignV := style.AlignItems
		if it.style.AlignSelf != nil {
			alignV = *it.style.AlignSelf
		}

		cc := Constraints{MaxWidth: innerW, MaxHeight: innerH}
		if justify == AlignStretch && it.style.Width.IsAuto() {
			cc.MinWidth = innerW
		}
		if alignV == AlignStretch && it.style.Height.IsAuto() {
			cc.MinHeight = innerH
		}
		sizeNode(it.node, cc)

		got := it.node.GetLayout().Rect
		ox := calculateAlignOffset(justify, innerW, got.Width)
		oy := calculateAlignOffset(alignV, innerH, got.Height)
		placeNode(it.node, cellX+it.style.Margin.Left+ox, cellY+it.style.Margin.Top+oy)
	}

	// Auto container dimensions from track extents.
	if !wOK {
		ownW = clampDim(totalExtent(plan.colSizes, plan.colGap)+padding.Horizontal(),
			style.MinWidth, style.MaxWidth, refW)
	}
	if !hOK {
		ownH = clampDim(totalExtent(plan.rowSizes, plan.rowGap)+padding.Vertical(),
			style.MinHeight, style.MaxHeight, refH)
	}

	size := c.Constrain(Size{Width: ownW, Height: ownH})
	commitLayout(node, size, padding)
	return size
}

// measureGridContent returns the natural content size of a grid container.
func measureGridContent(style Style, children []Layoutable, c Constraints) Size {
	padding := style.Padding
	availW, availH := -1, -1
	if c.HasBoundedWidth() {
		availW = sanitize(c.MaxWidth - padding.Horizontal())
	}
	if c.HasBoundedHeight() {
		availH = sanitize(c.MaxHeight - padding.Vertical())
	}
	plan := planGrid(style, children, availW, availH)
	return Size{
		Width:  totalExtent(plan.colSizes, plan.colGap) + padding.Horizontal(),
		Height: totalExtent(plan.rowSizes, plan.rowGap) + padding.Vertical(),
	}
}

// trackSizes resolves one axis of tracks in order: definite (fixed and
// percentage) tracks resolve against available space, auto tracks take
// item naturals, overflow shrinks definite tracks proportionally while
// auto tracks keep their content size, and leftover space is divided among
// Fr tracks by weight. available < 0 means indefinite (measurement), which
// sizes Fr tracks to content like auto tracks.
func trackSizes(tracks []Track, available, gap int, naturals []int) []int {
	n := len(tracks)
	sizes := make([]int, n)
	gapTotal := 0
	if n > 1 {
		gapTotal = gap * (n - 1)
	}

	definiteTotal, autoTotal := 0, 0
	frWeights := 0.0
	for i, t := range tracks {
		switch t.Unit {
		case TrackFixed, TrackPercent:
			ref := 0
			if available >= 0 {
				ref = available
			}
			sizes[i] = sanitize(t.Resolve(ref))
			definiteTotal += sizes[i]
		case TrackAuto:
			sizes[i] = naturals[i]
			autoTotal += sizes[i]
		case TrackFr:
			frWeights += sanitizeWeight(t.Amount)
		}
	}

	if available < 0 {
		for i, t := range tracks {
			if t.Unit == TrackFr {
				sizes[i] = naturals[i]
			}
		}
		return sizes
	}

	// Overflow shrinks definite tracks proportionally to their size.
	excess := definiteTotal + autoTotal + gapTotal - available
	if excess > 0 && definiteTotal > 0 {
		take := min(excess, definiteTotal)
		taken, accum := 0, 0
		for i, t := range tracks {
			if t.Unit != TrackFixed && t.Unit != TrackPercent {
				continue
			}
			accum += sizes[i]
			target := int(math.Round(float64(take) * float64(accum) / float64(definiteTotal)))
			sizes[i] -= target - taken
			taken = target
		}
		definiteTotal -= take
	}

	leftover := available - gapTotal - definiteTotal - autoTotal
	if leftover > 0 && frWeights > 0 {
		given, accum := 0, 0.0
		for i, t := range tracks {
			if t.Unit != TrackFr {
				continue
			}
			accum += sanitizeWeight(t.Amount)
			target := int(math.Round(float64(leftover) * accum / frWeights))
			sizes[i] = target - given
			given = target
		}
	}
	return sizes
}

// expandTracks pads a track list with Auto tracks up to count.
func expandTracks(tracks []Track, count int) []Track {
	if len(tracks) >= count {
		return tracks
	}
	expanded := make([]Track, count)
	copy(expanded, tracks)
	for i := len(tracks); i < count; i++ {
		expanded[i] = AutoTrack()
	}
	return expanded
}

// prefixPositions returns the starting offset of each track.
func prefixPositions(sizes []int, gap int) []int {
	pos := make([]int, len(sizes))
	offset := 0
	for i, s := range sizes {
		pos[i] = offset
		offset += s + gap
	}
	return pos
}

// spanExtent sums the spanned track sizes plus interior gaps.
func spanExtent(sizes []int, start, span, gap int) int {
	total := 0
	for i := start; i < start+span && i < len(sizes); i++ {
		total += sizes[i]
	}
	if span > 1 {
		total += gap * (span - 1)
	}
	return total
}

// totalExtent sums all track sizes plus interior gaps.
func totalExtent(sizes []int, gap int) int {
	if len(sizes) == 0 {
		return 0
	}
	total := gap * (len(sizes) - 1)
	for _, s := range sizes {
		total += s
	}
	return total
}

// ceilDiv divides a by b rounding up. b must be positive.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
