package engine

import (
	"math"

	layoutboundary "github.com/flexframe/layout-boundary"
	"github.com/flexframe/layout-boundary/style"
)

// layoutNode records a node's border-box size and lays out its children.
// containing is the size percentages in the node's own edge properties
// were resolved against by the caller; children resolve against this
// node's inner size.
func (t *Tree) layoutNode(id NodeID, size, containing layoutboundary.Size[float32]) {
	n := t.at(id)
	n.layout.Size = size

	s := &n.style
	border := resolveRect(s.Border, size.Width)
	padding := resolveRect(s.Padding, size.Width)
	n.layout.Border = border

	inner := layoutboundary.Size[float32]{
		Width:  maxf(0, size.Width-border.Left-border.Right-padding.Left-padding.Right),
		Height: maxf(0, size.Height-border.Top-border.Bottom-padding.Top-padding.Bottom),
	}
	// A scroll gutter consumes inner space on the opposite axis.
	if s.Overflow.Y == style.OverflowScroll {
		inner.Width = maxf(0, inner.Width-s.ScrollbarWidth)
	}
	if s.Overflow.X == style.OverflowScroll {
		inner.Height = maxf(0, inner.Height-s.ScrollbarWidth)
	}

	origin := layoutboundary.Point[float32]{
		X: border.Left + padding.Left,
		Y: border.Top + padding.Top,
	}

	switch s.Display {
	case style.DisplayNone:
		t.hideSubtree(id)
		return
	case style.DisplayFlex:
		t.flexLayout(id, inner, origin)
	default:
		// Block, and the grid fallback: vertical stacking.
		t.blockLayout(id, inner, origin)
	}
	t.absoluteLayout(id, inner, origin)

	extent := layoutboundary.Size[float32]{}
	for _, c := range n.children {
		cl := t.at(c).layout
		extent.Width = maxf(extent.Width, cl.Location.X+cl.Size.Width)
		extent.Height = maxf(extent.Height, cl.Location.Y+cl.Size.Height)
	}
	n.layout.ContentSize = layoutboundary.Size[float32]{
		Width:  maxf(size.Width, extent.Width+border.Right+padding.Right),
		Height: maxf(size.Height, extent.Height+border.Bottom+padding.Bottom),
	}
}

// hideSubtree zeroes the layouts of a display:none subtree.
func (t *Tree) hideSubtree(id NodeID) {
	n := t.at(id)
	n.layout = Layout{}
	for _, c := range n.children {
		t.hideSubtree(c)
	}
}

type flexItem struct {
	id     NodeID
	margin layoutboundary.Rect[float32]
	base   float32 // flex base main size
	main   float32 // main size after flexing
	cross  float32
	grow   float32
	shrink float32
	// min/max constraints on the main axis; NaN when unconstrained
	minMain float32
	maxMain float32
	frozen  bool
}

// outer returns the item's margin-box main size.
func (it *flexItem) outer(isRow bool) float32 {
	if isRow {
		return it.main + it.margin.Left + it.margin.Right
	}
	return it.main + it.margin.Top + it.margin.Bottom
}

func (t *Tree) flexLayout(id NodeID, inner layoutboundary.Size[float32], origin layoutboundary.Point[float32]) {
	n := t.at(id)
	s := &n.style
	isRow := s.FlexDirection.IsRow()

	mainAvail, crossAvail := inner.Width, inner.Height
	mainGap := s.Gap.Width.ResolveOrZero(inner.Width)
	crossGap := s.Gap.Height.ResolveOrZero(inner.Height)
	if !isRow {
		mainAvail, crossAvail = inner.Height, inner.Width
		mainGap, crossGap = crossGap, mainGap
	}

	var items []flexItem
	for _, c := range n.children {
		cs := &t.at(c).style
		if cs.Display == style.DisplayNone {
			t.hideSubtree(c)
			continue
		}
		if cs.Position == style.PositionAbsolute {
			continue
		}
		items = append(items, t.newFlexItem(c, cs, inner, isRow, mainAvail))
	}
	if len(items) == 0 {
		return
	}

	lines := collectLines(items, s.FlexWrap, mainAvail, mainGap, isRow)

	crossPos := float32(0)
	for li, line := range lines {
		resolveFlexibleLengths(line, mainAvail, mainGap, isRow)

		lineCross := float32(0)
		for i := range line {
			it := &line[i]
			if c := it.cross + crossMargins(it, isRow); c > lineCross {
				lineCross = c
			}
		}
		if len(lines) == 1 && !math.IsNaN(float64(crossAvail)) && crossAvail > 0 {
			// A single line fills the container's cross axis.
			lineCross = crossAvail
		}

		t.positionLine(id, line, s, isRow, mainAvail, mainGap, crossPos, lineCross, origin, inner)
		crossPos += lineCross
		if li < len(lines)-1 {
			crossPos += crossGap
		}
	}
}

func (t *Tree) newFlexItem(c NodeID, cs *style.Style, inner layoutboundary.Size[float32], isRow bool, mainAvail float32) flexItem {
	it := flexItem{
		id:     c,
		margin: resolveRect(cs.Margin, inner.Width),
		grow:   cs.FlexGrow,
		shrink: cs.FlexShrink,
	}

	mainDim, crossDim := cs.Size.Width, cs.Size.Height
	minDim, maxDim := cs.MinSize.Width, cs.MaxSize.Width
	crossAvail := inner.Height
	if !isRow {
		mainDim, crossDim = crossDim, mainDim
		minDim, maxDim = cs.MinSize.Height, cs.MaxSize.Height
		crossAvail = inner.Width
	}

	if v, ok := cs.FlexBasis.Resolve(mainAvail); ok {
		it.base = v
	} else if v, ok := mainDim.Resolve(mainAvail); ok {
		it.base = v
	}

	it.minMain = resolveOrNaN(minDim, mainAvail)
	it.maxMain = resolveOrNaN(maxDim, mainAvail)
	it.main = clampNaN(it.base, it.minMain, it.maxMain)

	if v, ok := crossDim.Resolve(crossAvail); ok {
		it.cross = v
	}
	// An aspect ratio derives the missing axis from the definite one.
	if ar := cs.AspectRatio; !math.IsNaN(float64(ar)) && ar > 0 {
		if _, ok := crossDim.Resolve(crossAvail); !ok {
			if isRow {
				it.cross = it.main / ar
			} else {
				it.cross = it.main * ar
			}
		}
	}
	return it
}

// collectLines splits items into flex lines based on the wrap mode.
func collectLines(items []flexItem, wrap style.FlexWrap, mainAvail, mainGap float32, isRow bool) [][]flexItem {
	if wrap == style.FlexWrapNoWrap || math.IsNaN(float64(mainAvail)) {
		return [][]flexItem{items}
	}
	var lines [][]flexItem
	lineStart := 0
	used := float32(0)
	for i := range items {
		outer := items[i].outer(isRow)
		if i > lineStart && used+mainGap+outer > mainAvail {
			lines = append(lines, items[lineStart:i])
			lineStart = i
			used = outer
			continue
		}
		if i > lineStart {
			used += mainGap
		}
		used += outer
	}
	lines = append(lines, items[lineStart:])
	return lines
}

// resolveFlexibleLengths distributes free main-axis space across one line,
// clamping and freezing items that hit their min/max constraints.
func resolveFlexibleLengths(line []flexItem, mainAvail, mainGap float32, isRow bool) {
	if math.IsNaN(float64(mainAvail)) {
		return
	}
	gaps := mainGap * float32(len(line)-1)

	for iter := 0; iter <= len(line); iter++ {
		used := gaps
		totalGrow, totalScaledShrink := float32(0), float32(0)
		for i := range line {
			used += line[i].outer(isRow)
			if !line[i].frozen {
				totalGrow += line[i].grow
				totalScaledShrink += line[i].shrink * line[i].base
			}
		}
		free := mainAvail - used

		anyClamped := false
		switch {
		case free > 0 && totalGrow > 0:
			for i := range line {
				it := &line[i]
				if it.frozen || it.grow == 0 {
					continue
				}
				target := it.main + free*(it.grow/totalGrow)
				clamped := clampNaN(target, it.minMain, it.maxMain)
				if clamped != target {
					it.frozen = true
					anyClamped = true
				}
				it.main = clamped
			}
		case free < 0 && totalScaledShrink > 0:
			for i := range line {
				it := &line[i]
				if it.frozen || it.shrink == 0 {
					continue
				}
				target := it.main + free*(it.shrink*it.base/totalScaledShrink)
				if target < 0 {
					target = 0
				}
				clamped := clampNaN(target, it.minMain, it.maxMain)
				if clamped != target {
					it.frozen = true
					anyClamped = true
				}
				it.main = clamped
			}
		default:
			return
		}
		if !anyClamped {
			return
		}
	}
}

// positionLine assigns main and cross positions within one flex line and
// recurses into the items.
func (t *Tree) positionLine(parent NodeID, line []flexItem, s *style.Style, isRow bool, mainAvail, mainGap, crossStart, lineCross float32, origin layoutboundary.Point[float32], inner layoutboundary.Size[float32]) {
	used := mainGap * float32(len(line)-1)
	for i := range line {
		used += line[i].outer(isRow)
	}
	free := maxf(0, mainAvail-used)

	offset, between := justifyOffsets(s.JustifyContent, free, len(line))
	pos := offset

	for i := range line {
		it := &line[i]

		// Stretch fills the line unless the item has a definite cross size.
		align := alignmentFor(s, &t.at(it.id).style)
		cs := &t.at(it.id).style
		crossDim := cs.Size.Height
		crossContaining := inner.Height
		if !isRow {
			crossDim = cs.Size.Width
			crossContaining = inner.Width
		}
		if _, definite := crossDim.Resolve(crossContaining); !definite {
			if align == style.AlignItemsStretch || align == style.AlignItemsNone {
				if ar := cs.AspectRatio; math.IsNaN(float64(ar)) || ar <= 0 {
					it.cross = maxf(0, lineCross-crossMargins(it, isRow))
				}
			}
		}

		crossOffset := crossStart + crossAlignOffset(align, lineCross, it.cross, crossMargins(it, isRow))

		var loc layoutboundary.Point[float32]
		var size layoutboundary.Size[float32]
		if isRow {
			mainPos := pos + it.margin.Left
			if s.FlexDirection.IsReverse() {
				mainPos = mainAvail - pos - it.outer(true) + it.margin.Left
			}
			loc = layoutboundary.Point[float32]{X: origin.X + mainPos, Y: origin.Y + crossOffset + it.margin.Top}
			size = layoutboundary.Size[float32]{Width: it.main, Height: it.cross}
		} else {
			mainPos := pos + it.margin.Top
			if s.FlexDirection.IsReverse() {
				mainPos = mainAvail - pos - it.outer(false) + it.margin.Top
			}
			loc = layoutboundary.Point[float32]{X: origin.X + crossOffset + it.margin.Left, Y: origin.Y + mainPos}
			size = layoutboundary.Size[float32]{Width: it.cross, Height: it.main}
		}

		child := t.at(it.id)
		size = clampSize(size, &child.style, inner)
		child.layout.Location = loc
		t.layoutNode(it.id, size, inner)

		pos += it.outer(isRow) + mainGap + between
	}
}

// blockLayout stacks in-flow children vertically at full available width.
func (t *Tree) blockLayout(id NodeID, inner layoutboundary.Size[float32], origin layoutboundary.Point[float32]) {
	n := t.at(id)
	y := float32(0)
	for _, c := range n.children {
		cs := &t.at(c).style
		if cs.Display == style.DisplayNone {
			t.hideSubtree(c)
			continue
		}
		if cs.Position == style.PositionAbsolute {
			continue
		}
		margin := resolveRect(cs.Margin, inner.Width)
		width := resolveOrFallback(cs.Size.Width, inner.Width, maxf(0, inner.Width-margin.Left-margin.Right))
		height := resolveOrFallback(cs.Size.Height, inner.Height, 0)
		size := clampSize(layoutboundary.Size[float32]{Width: width, Height: height}, cs, inner)

		y += margin.Top
		child := t.at(c)
		child.layout.Location = layoutboundary.Point[float32]{X: origin.X + margin.Left, Y: origin.Y + y}
		t.layoutNode(c, size, inner)
		y += size.Height + margin.Bottom
	}
}

// absoluteLayout positions absolutely positioned children against the
// container's inner box using their inset properties.
func (t *Tree) absoluteLayout(id NodeID, inner layoutboundary.Size[float32], origin layoutboundary.Point[float32]) {
	n := t.at(id)
	for _, c := range n.children {
		cs := &t.at(c).style
		if cs.Position != style.PositionAbsolute || cs.Display == style.DisplayNone {
			continue
		}
		margin := resolveRect(cs.Margin, inner.Width)
		left, hasLeft := cs.Inset.Left.Resolve(inner.Width)
		right, hasRight := cs.Inset.Right.Resolve(inner.Width)
		top, hasTop := cs.Inset.Top.Resolve(inner.Height)
		bottom, hasBottom := cs.Inset.Bottom.Resolve(inner.Height)

		width, hasWidth := cs.Size.Width.Resolve(inner.Width)
		if !hasWidth && hasLeft && hasRight {
			width = maxf(0, inner.Width-left-right-margin.Left-margin.Right)
		}
		height, hasHeight := cs.Size.Height.Resolve(inner.Height)
		if !hasHeight && hasTop && hasBottom {
			height = maxf(0, inner.Height-top-bottom-margin.Top-margin.Bottom)
		}
		size := clampSize(layoutboundary.Size[float32]{Width: width, Height: height}, cs, inner)

		x := margin.Left
		if hasLeft {
			x = left + margin.Left
		} else if hasRight {
			x = inner.Width - right - size.Width - margin.Right
		}
		y := margin.Top
		if hasTop {
			y = top + margin.Top
		} else if hasBottom {
			y = inner.Height - bottom - size.Height - margin.Bottom
		}

		child := t.at(c)
		child.layout.Location = layoutboundary.Point[float32]{X: origin.X + x, Y: origin.Y + y}
		t.layoutNode(c, size, inner)
	}
}

// alignmentFor resolves the effective cross alignment for an item.
func alignmentFor(container, item *style.Style) style.AlignItems {
	if item.AlignSelf != style.AlignItemsNone {
		return item.AlignSelf
	}
	return container.AlignItems
}

func crossMargins(it *flexItem, isRow bool) float32 {
	if isRow {
		return it.margin.Top + it.margin.Bottom
	}
	return it.margin.Left + it.margin.Right
}

// justifyOffsets returns the leading offset and extra per-item spacing for a
// justify-content keyword.
func justifyOffsets(j style.AlignContent, free float32, count int) (offset, between float32) {
	switch j {
	case style.AlignContentEnd, style.AlignContentFlexEnd:
		return free, 0
	case style.AlignContentCenter:
		return free / 2, 0
	case style.AlignContentSpaceBetween:
		if count > 1 {
			return 0, free / float32(count-1)
		}
		return 0, 0
	case style.AlignContentSpaceAround:
		if count > 0 {
			around := free / float32(count)
			return around / 2, around
		}
		return 0, 0
	case style.AlignContentSpaceEvenly:
		if count > 0 {
			evenly := free / float32(count+1)
			return evenly, evenly
		}
		return 0, 0
	default:
		return 0, 0
	}
}

// crossAlignOffset returns the cross-axis offset of an item within its line.
func crossAlignOffset(align style.AlignItems, lineCross, itemCross, margins float32) float32 {
	switch align {
	case style.AlignItemsEnd, style.AlignItemsFlexEnd:
		return maxf(0, lineCross-itemCross-margins)
	case style.AlignItemsCenter:
		return maxf(0, (lineCross-itemCross-margins)/2)
	default:
		// Start, baseline fallback, and stretch all pin to the line start.
		return 0
	}
}

// resolveRect resolves every edge of a dimension rect against a containing
// width, with indefinite values contributing zero.
func resolveRect(r layoutboundary.Rect[style.Dimension], containing float32) layoutboundary.Rect[float32] {
	return layoutboundary.Rect[float32]{
		Left:   r.Left.ResolveOrZero(containing),
		Right:  r.Right.ResolveOrZero(containing),
		Top:    r.Top.ResolveOrZero(containing),
		Bottom: r.Bottom.ResolveOrZero(containing),
	}
}

func resolveOrNaN(d style.Dimension, containing float32) float32 {
	if v, ok := d.Resolve(containing); ok {
		return v
	}
	return float32(math.NaN())
}

// clampNaN clamps v to [min, max], ignoring NaN bounds.
func clampNaN(v, min, max float32) float32 {
	if !math.IsNaN(float64(max)) && v > max {
		v = max
	}
	if !math.IsNaN(float64(min)) && v < min {
		v = min
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
