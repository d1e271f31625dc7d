package boundary

import (
	"unsafe"

	layoutboundary "github.com/flexframe/layout-boundary"
	"github.com/flexframe/layout-boundary/engine"
	"github.com/flexframe/layout-boundary/style"
)

// rectField is the rect-of-dimensions shape shared by the four edge
// properties.
type rectField = layoutboundary.Rect[style.Dimension]

// NodeID identifies a node within the tree behind a TreeRef.
type NodeID = engine.NodeID

// TreeRef is a raw, non-owning reference to an engine tree. The boundary
// never allocates or frees what a TreeRef points at; it only checks the
// reference for nullness before dereferencing.
type TreeRef unsafe.Pointer

// StyleConstRef is a raw, read-only reference to one node's style.
type StyleConstRef unsafe.Pointer

// StyleMutRef is a raw, mutable reference to one node's style. The two
// reference types share a representation but are distinct on the signature
// level, so read-only references cannot reach a setter without a visible
// conversion.
type StyleMutRef struct{ p unsafe.Pointer }

// TreeRefOf derives a raw tree reference for the boundary surface.
func TreeRefOf(t *engine.Tree) TreeRef {
	return TreeRef(unsafe.Pointer(t))
}

// StyleConstRefOf derives a read-only style reference.
func StyleConstRefOf(s *style.Style) StyleConstRef {
	return StyleConstRef(unsafe.Pointer(s))
}

// StyleMutRefOf derives a mutable style reference.
func StyleMutRefOf(s *style.Style) StyleMutRef {
	return StyleMutRef{unsafe.Pointer(s)}
}

// Const downgrades a mutable reference for use with getters. There is no
// upgrade in the other direction; mutable references only come from the
// tree.
func (r StyleMutRef) Const() StyleConstRef {
	return StyleConstRef(r.p)
}

func treeOf(r TreeRef) *engine.Tree        { return (*engine.Tree)(r) }
func styleOf(r StyleConstRef) *style.Style { return (*style.Style)(r) }
func styleMut(r StyleMutRef) *style.Style  { return (*style.Style)(r.p) }

// Accessor constructors. Every per-property entry point is an instantiation
// of one of these over a field path, so the null-handle guard, the accepting
// set, and the no-partial-application rule cannot drift between properties.

// dimField selects one dimension-valued property within a style.
type dimField func(*style.Style) *style.Dimension

// floatField selects one plain float property within a style.
type floatField func(*style.Style) *float32

func getDimension(raw StyleConstRef, field dimField) Dimension {
	if raw == nil {
		return Dimension{}
	}
	return encodeDimension(*field(styleOf(raw)))
}

func setDimension(raw StyleMutRef, field dimField, accept AcceptSet, value float32, unit Unit) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	d, st := decodeDimension(value, unit, accept)
	if st != StatusOK {
		return st
	}
	*field(styleMut(raw)) = d
	return StatusOK
}

func getFloat(raw StyleConstRef, field floatField) float32 {
	if raw == nil {
		return 0
	}
	return *field(styleOf(raw))
}

func setFloat(raw StyleMutRef, field floatField, value float32) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	*field(styleMut(raw)) = value
	return StatusOK
}

func getEnum[E ~uint8](raw StyleConstRef, field func(*style.Style) *E) E {
	if raw == nil {
		var zero E
		return zero
	}
	return *field(styleOf(raw))
}

func setEnum[E ~uint8](raw StyleMutRef, field func(*style.Style) *E, value E) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	*field(styleMut(raw)) = value
	return StatusOK
}

// setEdges decodes once and applies the value to one, two, or four edges of
// a rect-valued property. Either every targeted edge is written or, on a
// decode failure or bad selector, none are.
func setEdges(raw StyleMutRef, field func(*style.Style) *rectField, accept AcceptSet, edge Edge, value Dimension) Status {
	if raw.p == nil {
		return StatusNullStylePointer
	}
	d, st := decodeDimension(value.Value, value.Unit, accept)
	if st != StatusOK {
		return st
	}
	r := field(styleMut(raw))
	switch edge {
	case EdgeTop:
		r.Top = d
	case EdgeBottom:
		r.Bottom = d
	case EdgeLeft:
		r.Left = d
	case EdgeRight:
		r.Right = d
	case EdgeVertical:
		r.Top = d
		r.Bottom = d
	case EdgeHorizontal:
		r.Left = d
		r.Right = d
	case EdgeAll:
		r.Top = d
		r.Bottom = d
		r.Left = d
		r.Right = d
	default:
		return StatusInvalidEdge
	}
	return StatusOK
}
