package engine

import (
	layoutboundary "github.com/flexframe/layout-boundary"
)

// Layout is the computed result for one node, in the parent's coordinate
// space. Border widths are included so callers can find the content box
// without re-resolving styles.
type Layout struct {
	Location    layoutboundary.Point[float32]
	Size        layoutboundary.Size[float32]
	ContentSize layoutboundary.Size[float32]
	Border      layoutboundary.Rect[float32]
}
