// Package style defines the layout engine's native style model: the variant
// Dimension type, grid placements, enum properties, and the Style record a
// node carries. The boundary package converts between these values and flat
// wire records; nothing in this package knows about the wire form.
package style

import (
	"math"

	layoutboundary "github.com/flexframe/layout-boundary"
)

// Style holds every styling property of one node.
type Style struct {
	Display  Display
	Position Position
	Overflow layoutboundary.Point[Overflow]

	// ScrollbarWidth is the space reserved on axes with Overflow scroll.
	ScrollbarWidth float32

	Inset layoutboundary.Rect[Dimension]

	Size    layoutboundary.Size[Dimension]
	MinSize layoutboundary.Size[Dimension]
	MaxSize layoutboundary.Size[Dimension]

	// AspectRatio is width / height. NaN means unset.
	AspectRatio float32

	Margin  layoutboundary.Rect[Dimension]
	Padding layoutboundary.Rect[Dimension]
	Border  layoutboundary.Rect[Dimension]
	Gap     layoutboundary.Size[Dimension]

	AlignItems     AlignItems
	AlignSelf      AlignItems
	JustifyItems   AlignItems
	JustifySelf    AlignItems
	AlignContent   AlignContent
	JustifyContent AlignContent

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexBasis     Dimension
	FlexGrow      float32
	FlexShrink    float32

	GridAutoFlow GridAutoFlow
	GridRow      GridLine
	GridColumn   GridLine
}

// Default returns the engine's default style: an auto-sized flex container
// with zero-length edges and no alignment overrides.
func Default() Style {
	autoRect := layoutboundary.Rect[Dimension]{
		Left: Auto(), Right: Auto(), Top: Auto(), Bottom: Auto(),
	}
	zeroRect := layoutboundary.Rect[Dimension]{
		Left: Length(0), Right: Length(0), Top: Length(0), Bottom: Length(0),
	}
	return Style{
		Display:     DisplayFlex,
		Position:    PositionRelative,
		Inset:       autoRect,
		Size:        layoutboundary.Size[Dimension]{Width: Auto(), Height: Auto()},
		MinSize:     layoutboundary.Size[Dimension]{Width: Auto(), Height: Auto()},
		MaxSize:     layoutboundary.Size[Dimension]{Width: Auto(), Height: Auto()},
		AspectRatio: float32(math.NaN()),
		Margin:      zeroRect,
		Padding:     zeroRect,
		Border:      zeroRect,
		Gap:         layoutboundary.Size[Dimension]{Width: Length(0), Height: Length(0)},
		FlexBasis:   Auto(),
		FlexShrink:  1,
		GridRow:     AutoGridLine(),
		GridColumn:  AutoGridLine(),
	}
}
