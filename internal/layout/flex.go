package layout

import "math"

// flexItem tracks one child's sizing state through the flex passes.
type flexItem struct {
	node        Layoutable
	style       Style
	natural     int // Natural main-axis size before distribution
	mainSize    int
	crossSize   int
	mainMargin  int
	crossMargin int
	grow        float64
	shrink      float64
}

// sizeFlex lays out children along a single axis: natural sizing, then
// grow/shrink distribution under a definite main size, then per-child
// min/max clamping, final child layout under tight main constraints, and
// justification/alignment. Auto container dimensions resolve from the
// extent of the final child boxes as a last step.
func sizeFlex(node Layoutable, style Style, children []Layoutable, c Constraints) Size {
	horizontal := style.Direction == Row
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

	mainOK, crossOK := wOK, hOK
	ownMain, ownCross := ownW, ownH
	padMain, padCross := padding.Horizontal(), padding.Vertical()
	if !horizontal {
		mainOK, crossOK = hOK, wOK
		ownMain, ownCross = ownH, ownW
		padMain, padCross = padding.Vertical(), padding.Horizontal()
	}

	// Content-box extents; -1 marks a content-driven (indefinite) axis.
	contentMain, contentCross := -1, -1
	if mainOK {
		contentMain = sanitize(ownMain - padMain)
	}
	if crossOK {
		contentCross = sanitize(ownCross - padCross)
	}

	items := measureFlexItems(children, contentMain, contentCross, horizontal)

	gap := max(style.Gap, 0)
	gapTotal := 0
	if len(items) > 1 {
		gapTotal = gap * (len(items) - 1)
	}

	used := gapTotal
	for i := range items {
		used += items[i].natural + items[i].mainMargin
	}

	// Distribution only runs against a definite main size; a
	// content-sized container keeps natural sizes.
	if contentMain >= 0 {
		distributeMain(items, contentMain-used)
	}

	mainRef := -1
	if contentMain >= 0 {
		mainRef = contentMain
	}
	for i := range items {
		cs := items[i].style
		if horizontal {
			items[i].mainSize = clampDim(items[i].mainSize, cs.MinWidth, cs.MaxWidth, mainRef)
		} else {
			items[i].mainSize = clampDim(items[i].mainSize, cs.MinHeight, cs.MaxHeight, mainRef)
		}
	}

	// Cross extent used for stretch and alignment. Content-driven cross
	// sizes use the largest child.
	crossExtent := contentCross
	if crossExtent < 0 {
		crossExtent = 0
		for i := range items {
			crossExtent = max(crossExtent, items[i].crossSize+items[i].crossMargin)
		}
	}

	// Final child layout: main axis is pinned tight so children do not
	// re-derive it; the cross axis is tight only when stretching.
	for i := range items {
		it := &items[i]
		align := style.AlignItems
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
		}
		crossAvail := sanitize(crossExtent - it.crossMargin)
		stretch := align == AlignStretch && crossIsAuto(it.style, horizontal)

		var cc Constraints
		if horizontal {
			cc = Constraints{MinWidth: it.mainSize, MaxWidth: it.mainSize, MaxHeight: crossAvail}
			if stretch {
				cc.MinHeight = crossAvail
			}
		} else {
			cc = Constraints{MinHeight: it.mainSize, MaxHeight: it.mainSize, MaxWidth: crossAvail}
			if stretch {
				cc.MinWidth = crossAvail
			}
		}
		sizeNode(it.node, cc)

		got := it.node.GetLayout().Rect
		if horizontal {
			it.mainSize, it.crossSize = got.Width, got.Height
		} else {
			it.mainSize, it.crossSize = got.Height, got.Width
		}
	}

	// Justification and placement.
	usedMain := gapTotal
	for i := range items {
		usedMain += items[i].mainSize + items[i].mainMargin
	}
	mainExtent := contentMain
	if mainExtent < 0 {
		mainExtent = usedMain
	}
	free := max(mainExtent-usedMain, 0)
	offset := calculateJustifyOffset(style.JustifyContent, free, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, free, len(items))

	pos := offset
	for i := range items {
		it := &items[i]
		align := style.AlignItems
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
		}
		crossPos := calculateAlignOffset(align, crossExtent, it.crossSize+it.crossMargin)

		leadMain, leadCross := it.style.Margin.Left, it.style.Margin.Top
		if !horizontal {
			leadMain, leadCross = it.style.Margin.Top, it.style.Margin.Left
		}

		x, y := pos+leadMain, crossPos+leadCross
		if !horizontal {
			x, y = crossPos+leadCross, pos+leadMain
		}
		placeNode(it.node, x, y)

		pos += it.mainSize + it.mainMargin
		if i < len(items)-1 {
			pos += gap + spacing
		}
	}

	// Auto container dimensions from the union of final child boxes.
	if !mainOK {
		ownMain = usedMain + padMain
	}
	if !crossOK {
		ownCross = crossExtent + padCross
	}
	w, h := ownMain, ownCross
	if !horizontal {
		w, h = ownCross, ownMain
	}
	if !wOK {
		w = clampDim(w, style.MinWidth, style.MaxWidth, refW)
	}
	if !hOK {
		h = clampDim(h, style.MinHeight, style.MaxHeight, refH)
	}

	size := c.Constrain(Size{Width: w, Height: h})
	commitLayout(node, size, padding)
	return size
}

// measureFlexItems measures each child's natural main and cross size.
// contentMain/contentCross bound the measurement when definite (-1 means
// unbounded). An explicit flex-basis overrides the measured main size.
func measureFlexItems(children []Layoutable, contentMain, contentCross int, horizontal bool) []flexItem {
	items := make([]flexItem, 0, len(children))
	for _, child := range children {
		cs := child.LayoutStyle()
		it := flexItem{
			node:   child,
			style:  cs,
			grow:   sanitizeWeight(cs.FlexGrow),
			shrink: sanitizeWeight(cs.FlexShrink),
		}
		if horizontal {
			it.mainMargin = cs.Margin.Horizontal()
			it.crossMargin = cs.Margin.Vertical()
		} else {
			it.mainMargin = cs.Margin.Vertical()
			it.crossMargin = cs.Margin.Horizontal()
		}

		mainMax, crossMax := Unbounded, Unbounded
		if contentMain >= 0 {
			mainMax = sanitize(contentMain - it.mainMargin)
		}
		if contentCross >= 0 {
			crossMax = sanitize(contentCross - it.crossMargin)
		}
		mc := Constraints{MaxWidth: mainMax, MaxHeight: crossMax}
		if !horizontal {
			mc = Constraints{MaxWidth: crossMax, MaxHeight: mainMax}
		}

		nat := measureNode(child, mc)
		if horizontal {
			it.natural, it.crossSize = nat.Width, nat.Height
		} else {
			it.natural, it.crossSize = nat.Height, nat.Width
		}

		if !cs.FlexBasis.IsAuto() {
			ref := -1
			if contentMain >= 0 {
				ref = contentMain
			}
			if basis, ok := resolveFlexBasis(cs, ref, horizontal); ok {
				it.natural = basis
			}
		}
		it.mainSize = it.natural
		items = append(items, it)
	}
	return items
}

// resolveFlexBasis resolves an explicit flex-basis against the container's
// main content size, clamped by the child's own min/max.
func resolveFlexBasis(cs Style, ref int, horizontal bool) (int, bool) {
	if cs.FlexBasis.Unit == UnitPercent && ref < 0 {
		return 0, false
	}
	n := cs.FlexBasis.Resolve(max(ref, 0), 0)
	if horizontal {
		return clampDim(n, cs.MinWidth, cs.MaxWidth, ref), true
	}
	return clampDim(n, cs.MinHeight, cs.MaxHeight, ref), true
}

// measureFlexContent returns the natural content size of a flex container:
// child naturals plus gaps along the main axis, the largest child on the
// cross axis, plus padding.
func measureFlexContent(style Style, children []Layoutable, c Constraints) Size {
	horizontal := style.Direction == Row
	padding := style.Padding

	contentMain, contentCross := -1, -1
	if horizontal {
		if c.HasBoundedWidth() {
			contentMain = sanitize(c.MaxWidth - padding.Horizontal())
		}
		if c.HasBoundedHeight() {
			contentCross = sanitize(c.MaxHeight - padding.Vertical())
		}
	} else {
		if c.HasBoundedHeight() {
			contentMain = sanitize(c.MaxHeight - padding.Vertical())
		}
		if c.HasBoundedWidth() {
			contentCross = sanitize(c.MaxWidth - padding.Horizontal())
		}
	}

	items := measureFlexItems(children, contentMain, contentCross, horizontal)

	mainSum, crossMax := 0, 0
	for i := range items {
		mainSum += items[i].natural + items[i].mainMargin
		crossMax = max(crossMax, items[i].crossSize+items[i].crossMargin)
	}
	if len(items) > 1 {
		mainSum += max(style.Gap, 0) * (len(items) - 1)
	}

	padMain, padCross := padding.Horizontal(), padding.Vertical()
	if !horizontal {
		padMain, padCross = padding.Vertical(), padding.Horizontal()
	}
	w, h := mainSum+padMain, crossMax+padCross
	if !horizontal {
		w, h = crossMax+padCross, mainSum+padMain
	}
	return Size{Width: w, Height: h}
}

// distributeMain grows or shrinks item main sizes to consume remaining
// space. Growth is proportional to flex-grow. Shrinkage is proportional to
// each item's natural size weighted by flex-shrink and floored at zero, so
// larger items give up more cells than smaller ones and zero-shrink items
// never shrink. Rounding is cumulative so the total distributed space is
// exact.
func distributeMain(items []flexItem, remaining int) {
	if remaining > 0 {
		totalGrow := 0.0
		for i := range items {
			totalGrow += items[i].grow
		}
		if totalGrow <= 0 {
			return
		}
		given, accum := 0, 0.0
		for i := range items {
			accum += items[i].grow
			target := int(math.Round(float64(remaining) * accum / totalGrow))
			items[i].mainSize = items[i].natural + (target - given)
			given = target
		}
		return
	}

	if remaining < 0 {
		deficit := -remaining
		totalWeight := 0.0
		for i := range items {
			totalWeight += float64(items[i].natural) * items[i].shrink
		}
		if totalWeight <= 0 {
			return
		}
		taken, accum := 0, 0.0
		for i := range items {
			accum += float64(items[i].natural) * items[i].shrink
			target := int(math.Round(float64(deficit) * accum / totalWeight))
			items[i].mainSize = max(items[i].natural-(target-taken), 0)
			taken = target
		}
	}
}

// calculateJustifyOffset returns the starting offset before the first child.
func calculateJustifyOffset(j Justify, free, count int) int {
	switch j {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		if count > 0 {
			return int(math.Round(float64(free) / float64(count*2)))
		}
	case JustifySpaceEvenly:
		return int(math.Round(float64(free) / float64(count+1)))
	}
	return 0
}

// calculateJustifySpacing returns the extra space inserted between children.
func calculateJustifySpacing(j Justify, free, count int) int {
	switch j {
	case JustifySpaceBetween:
		if count > 1 {
			return free / (count - 1)
		}
	case JustifySpaceAround:
		if count > 0 {
			return int(math.Round(float64(free) / float64(count)))
		}
	case JustifySpaceEvenly:
		return int(math.Round(float64(free) / float64(count+1)))
	}
	return 0
}

// calculateAlignOffset returns the cross-axis offset for one child.
// Stretch behaves like start; the child has already been stretched.
func calculateAlignOffset(a Align, extent, size int) int {
	switch a {
	case AlignEnd:
		return extent - size
	case AlignCenter:
		return (extent - size) / 2
	}
	return 0
}

// crossIsAuto reports whether the child's cross-axis dimension is Auto.
func crossIsAuto(cs Style, horizontal bool) bool {
	if horizontal {
		return cs.Height.IsAuto()
	}
	return cs.Width.IsAuto()
}
