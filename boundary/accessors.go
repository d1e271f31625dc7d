package boundary

import (
	"math"

	"github.com/flexframe/layout-boundary/style"
)

// Per-property entry points. Every function here is one instantiation of a
// guard constructor over a field path; no accessor carries its own decode
// or null-check logic. Getters given a null reference return the documented
// zero default for their type and setters return StatusNullStylePointer.

// Display and position.

func StyleGetDisplay(raw StyleConstRef) style.Display {
	return getEnum(raw, func(s *style.Style) *style.Display { return &s.Display })
}

func StyleSetDisplay(raw StyleMutRef, value style.Display) Status {
	return setEnum(raw, func(s *style.Style) *style.Display { return &s.Display }, value)
}

func StyleGetPosition(raw StyleConstRef) style.Position {
	return getEnum(raw, func(s *style.Style) *style.Position { return &s.Position })
}

func StyleSetPosition(raw StyleMutRef, value style.Position) Status {
	return setEnum(raw, func(s *style.Style) *style.Position { return &s.Position }, value)
}

func StyleGetOverflowX(raw StyleConstRef) style.Overflow {
	return getEnum(raw, func(s *style.Style) *style.Overflow { return &s.Overflow.X })
}

func StyleSetOverflowX(raw StyleMutRef, value style.Overflow) Status {
	return setEnum(raw, func(s *style.Style) *style.Overflow { return &s.Overflow.X }, value)
}

func StyleGetOverflowY(raw StyleConstRef) style.Overflow {
	return getEnum(raw, func(s *style.Style) *style.Overflow { return &s.Overflow.Y })
}

func StyleSetOverflowY(raw StyleMutRef, value style.Overflow) Status {
	return setEnum(raw, func(s *style.Style) *style.Overflow { return &s.Overflow.Y }, value)
}

// Alignment. These properties are optional; on the wire the unset state is
// the integer 0 and the set states start at 1, so the getter's int32 is
// unambiguous.

func StyleGetAlignContent(raw StyleConstRef) int32 {
	return int32(getEnum(raw, func(s *style.Style) *style.AlignContent { return &s.AlignContent }))
}

func StyleSetAlignContent(raw StyleMutRef, value style.AlignContent) Status {
	return setEnum(raw, func(s *style.Style) *style.AlignContent { return &s.AlignContent }, value)
}

func StyleGetAlignItems(raw StyleConstRef) int32 {
	return int32(getEnum(raw, func(s *style.Style) *style.AlignItems { return &s.AlignItems }))
}

func StyleSetAlignItems(raw StyleMutRef, value style.AlignItems) Status {
	return setEnum(raw, func(s *style.Style) *style.AlignItems { return &s.AlignItems }, value)
}

func StyleGetAlignSelf(raw StyleConstRef) int32 {
	return int32(getEnum(raw, func(s *style.Style) *style.AlignItems { return &s.AlignSelf }))
}

func StyleSetAlignSelf(raw StyleMutRef, value style.AlignItems) Status {
	return setEnum(raw, func(s *style.Style) *style.AlignItems { return &s.AlignSelf }, value)
}

func StyleGetJustifyContent(raw StyleConstRef) int32 {
	return int32(getEnum(raw, func(s *style.Style) *style.AlignContent { return &s.JustifyContent }))
}

func StyleSetJustifyContent(raw StyleMutRef, value style.AlignContent) Status {
	return setEnum(raw, func(s *style.Style) *style.AlignContent { return &s.JustifyContent }, value)
}

func StyleGetJustifyItems(raw StyleConstRef) int32 {
	return int32(getEnum(raw, func(s *style.Style) *style.AlignItems { return &s.JustifyItems }))
}

func StyleSetJustifyItems(raw StyleMutRef, value style.AlignItems) Status {
	return setEnum(raw, func(s *style.Style) *style.AlignItems { return &s.JustifyItems }, value)
}

func StyleGetJustifySelf(raw StyleConstRef) int32 {
	return int32(getEnum(raw, func(s *style.Style) *style.AlignItems { return &s.JustifySelf }))
}

func StyleSetJustifySelf(raw StyleMutRef, value style.AlignItems) Status {
	return setEnum(raw, func(s *style.Style) *style.AlignItems { return &s.JustifySelf }, value)
}

// Flex container.

func StyleGetFlexDirection(raw StyleConstRef) style.FlexDirection {
	return getEnum(raw, func(s *style.Style) *style.FlexDirection { return &s.FlexDirection })
}

func StyleSetFlexDirection(raw StyleMutRef, value style.FlexDirection) Status {
	return setEnum(raw, func(s *style.Style) *style.FlexDirection { return &s.FlexDirection }, value)
}

func StyleGetFlexWrap(raw StyleConstRef) style.FlexWrap {
	return getEnum(raw, func(s *style.Style) *style.FlexWrap { return &s.FlexWrap })
}

func StyleSetFlexWrap(raw StyleMutRef, value style.FlexWrap) Status {
	return setEnum(raw, func(s *style.Style) *style.FlexWrap { return &s.FlexWrap }, value)
}

func StyleGetGridAutoFlow(raw StyleConstRef) style.GridAutoFlow {
	return getEnum(raw, func(s *style.Style) *style.GridAutoFlow { return &s.GridAutoFlow })
}

func StyleSetGridAutoFlow(raw StyleMutRef, value style.GridAutoFlow) Status {
	return setEnum(raw, func(s *style.Style) *style.GridAutoFlow { return &s.GridAutoFlow }, value)
}

// Sizing. Width and height accept the full dimension class; minimum and
// maximum sizes share it.

func StyleGetWidth(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Size.Width })
}

func StyleSetWidth(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Size.Width }, AcceptDimension, value, unit)
}

func StyleGetHeight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Size.Height })
}

func StyleSetHeight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Size.Height }, AcceptDimension, value, unit)
}

func StyleGetMinWidth(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.MinSize.Width })
}

func StyleSetMinWidth(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.MinSize.Width }, AcceptDimension, value, unit)
}

func StyleGetMinHeight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.MinSize.Height })
}

func StyleSetMinHeight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.MinSize.Height }, AcceptDimension, value, unit)
}

func StyleGetMaxWidth(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.MaxSize.Width })
}

func StyleSetMaxWidth(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.MaxSize.Width }, AcceptDimension, value, unit)
}

func StyleGetMaxHeight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.MaxSize.Height })
}

func StyleSetMaxHeight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.MaxSize.Height }, AcceptDimension, value, unit)
}

// Inset. Auto is a legal inset, so the class is length-percentage-auto.

func StyleGetInsetTop(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Top })
}

func StyleSetInsetTop(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Top }, AcceptLengthPercentageAuto, value, unit)
}

func StyleGetInsetBottom(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Bottom })
}

func StyleSetInsetBottom(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Bottom }, AcceptLengthPercentageAuto, value, unit)
}

func StyleGetInsetLeft(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Left })
}

func StyleSetInsetLeft(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Left }, AcceptLengthPercentageAuto, value, unit)
}

func StyleGetInsetRight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Right })
}

func StyleSetInsetRight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Inset.Right }, AcceptLengthPercentageAuto, value, unit)
}

// Margin.

func StyleGetMarginTop(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Top })
}

func StyleSetMarginTop(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Top }, AcceptLengthPercentageAuto, value, unit)
}

func StyleGetMarginBottom(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Bottom })
}

func StyleSetMarginBottom(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Bottom }, AcceptLengthPercentageAuto, value, unit)
}

func StyleGetMarginLeft(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Left })
}

func StyleSetMarginLeft(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Left }, AcceptLengthPercentageAuto, value, unit)
}

func StyleGetMarginRight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Right })
}

func StyleSetMarginRight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Margin.Right }, AcceptLengthPercentageAuto, value, unit)
}

// Padding and border take exact lengths and percentages only.

func StyleGetPaddingTop(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Top })
}

func StyleSetPaddingTop(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Top }, AcceptLengthPercentage, value, unit)
}

func StyleGetPaddingBottom(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Bottom })
}

func StyleSetPaddingBottom(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Bottom }, AcceptLengthPercentage, value, unit)
}

func StyleGetPaddingLeft(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Left })
}

func StyleSetPaddingLeft(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Left }, AcceptLengthPercentage, value, unit)
}

func StyleGetPaddingRight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Right })
}

func StyleSetPaddingRight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Padding.Right }, AcceptLengthPercentage, value, unit)
}

func StyleGetBorderTop(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Top })
}

func StyleSetBorderTop(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Top }, AcceptLengthPercentage, value, unit)
}

func StyleGetBorderBottom(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Bottom })
}

func StyleSetBorderBottom(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Bottom }, AcceptLengthPercentage, value, unit)
}

func StyleGetBorderLeft(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Left })
}

func StyleSetBorderLeft(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Left }, AcceptLengthPercentage, value, unit)
}

func StyleGetBorderRight(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Right })
}

func StyleSetBorderRight(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Border.Right }, AcceptLengthPercentage, value, unit)
}

// Gaps.

func StyleGetColumnGap(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Gap.Width })
}

func StyleSetColumnGap(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Gap.Width }, AcceptLengthPercentage, value, unit)
}

func StyleGetRowGap(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.Gap.Height })
}

func StyleSetRowGap(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.Gap.Height }, AcceptLengthPercentage, value, unit)
}

// StyleGetAspectRatio returns the width/height ratio, NaN when unset.
func StyleGetAspectRatio(raw StyleConstRef) float32 {
	if raw == nil {
		return float32(math.NaN())
	}
	return styleOf(raw).AspectRatio
}

// StyleSetAspectRatio never rejects its payload: a value that is not a
// positive finite number unsets the ratio instead of failing, matching the
// getter's NaN convention.
func StyleSetAspectRatio(raw StyleMutRef, value float32) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	if isFinite(value) && value > 0 {
		styleMut(raw).AspectRatio = value
	} else {
		styleMut(raw).AspectRatio = float32(math.NaN())
	}
	return StatusOK
}

// Plain floats.

func StyleGetScrollbarWidth(raw StyleConstRef) float32 {
	return getFloat(raw, func(s *style.Style) *float32 { return &s.ScrollbarWidth })
}

func StyleSetScrollbarWidth(raw StyleMutRef, value float32) Status {
	return setFloat(raw, func(s *style.Style) *float32 { return &s.ScrollbarWidth }, value)
}

func StyleGetFlexBasis(raw StyleConstRef) Dimension {
	return getDimension(raw, func(s *style.Style) *style.Dimension { return &s.FlexBasis })
}

func StyleSetFlexBasis(raw StyleMutRef, value float32, unit Unit) Status {
	return setDimension(raw, func(s *style.Style) *style.Dimension { return &s.FlexBasis }, AcceptDimension, value, unit)
}

func StyleGetFlexGrow(raw StyleConstRef) float32 {
	return getFloat(raw, func(s *style.Style) *float32 { return &s.FlexGrow })
}

func StyleSetFlexGrow(raw StyleMutRef, value float32) Status {
	return setFloat(raw, func(s *style.Style) *float32 { return &s.FlexGrow }, value)
}

func StyleGetFlexShrink(raw StyleConstRef) float32 {
	return getFloat(raw, func(s *style.Style) *float32 { return &s.FlexShrink })
}

func StyleSetFlexShrink(raw StyleMutRef, value float32) Status {
	return setFloat(raw, func(s *style.Style) *float32 { return &s.FlexShrink }, value)
}

// Batch edge setters. One decode, then the selected edges are written
// together; an invalid payload or selector leaves every edge untouched.

func StyleSetMargin(raw StyleMutRef, edge Edge, value Dimension) Status {
	return setEdges(raw, func(s *style.Style) *rectField { return &s.Margin }, AcceptLengthPercentageAuto, edge, value)
}

func StyleSetPadding(raw StyleMutRef, edge Edge, value Dimension) Status {
	return setEdges(raw, func(s *style.Style) *rectField { return &s.Padding }, AcceptLengthPercentage, edge, value)
}

func StyleSetBorder(raw StyleMutRef, edge Edge, value Dimension) Status {
	return setEdges(raw, func(s *style.Style) *rectField { return &s.Border }, AcceptLengthPercentage, edge, value)
}

func StyleSetInset(raw StyleMutRef, edge Edge, value Dimension) Status {
	return setEdges(raw, func(s *style.Style) *rectField { return &s.Inset }, AcceptLengthPercentageAuto, edge, value)
}

// Grid placements. The wire triple has no invalid states, so the only
// failure mode is a null reference.

func StyleGetGridColumn(raw StyleConstRef) GridPlacement {
	if raw == nil {
		return GridPlacement{}
	}
	return encodeGridPlacement(styleOf(raw).GridColumn)
}

func StyleSetGridColumn(raw StyleMutRef, placement GridPlacement) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	styleMut(raw).GridColumn = decodeGridPlacement(placement)
	return StatusOK
}

func StyleGetGridRow(raw StyleConstRef) GridPlacement {
	if raw == nil {
		return GridPlacement{}
	}
	return encodeGridPlacement(styleOf(raw).GridRow)
}

func StyleSetGridRow(raw StyleMutRef, placement GridPlacement) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	styleMut(raw).GridRow = decodeGridPlacement(placement)
	return StatusOK
}
