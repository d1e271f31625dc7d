package style

// Display sets the layout algorithm used for a node's children.
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayNone
)

var displayNames = [...]string{
	DisplayBlock: "block",
	DisplayFlex:  "flex",
	DisplayGrid:  "grid",
	DisplayNone:  "none",
}

func (d Display) String() string {
	if int(d) < len(displayNames) {
		return displayNames[d]
	}
	return "unknown"
}

// Position selects between flow-relative and absolute positioning.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// Overflow controls how overflowing content affects sizing and scrollbars.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

// FlexDirection sets the main axis of a flex container.
type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsReverse reports whether items are laid out against axis direction.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// FlexWrap controls line breaking in a flex container.
type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

// GridAutoFlow controls the auto-placement direction in a grid container.
type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

// AlignItems is an item-distribution keyword for the cross axis. The zero
// value means the property is unset, which keeps the optional properties
// (align-items, align-self, justify-items, justify-self) pointer-free.
type AlignItems uint8

const (
	AlignItemsNone AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignContent is a content-distribution keyword. As with AlignItems, the
// zero value means unset.
type AlignContent uint8

const (
	AlignContentNone AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceEvenly
	AlignContentSpaceAround
)
