package engine

import (
	"math"

	layoutboundary "github.com/flexframe/layout-boundary"
	"github.com/flexframe/layout-boundary/errors"
	"github.com/flexframe/layout-boundary/style"
	"go.uber.org/zap"
)

// NodeID identifies a node in a Tree's arena. IDs are 1-based; the zero
// value never names a live node.
type NodeID uint64

type node struct {
	style    style.Style
	children []NodeID
	parent   NodeID
	layout   Layout
}

// Tree owns a node arena and the styles and computed layouts of its nodes.
// Nodes are never freed individually; a Tree is dropped as a whole.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewLeaf creates a node with the default style and returns its id.
func (t *Tree) NewLeaf() NodeID {
	return t.NewLeafWithStyle(style.Default())
}

// NewLeafWithStyle creates a node with the given style and returns its id.
func (t *Tree) NewLeafWithStyle(s style.Style) NodeID {
	t.nodes = append(t.nodes, node{style: s})
	return NodeID(len(t.nodes))
}

// Valid reports whether id names a live node in this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 1 && int(id) <= len(t.nodes)
}

func (t *Tree) at(id NodeID) *node {
	return &t.nodes[id-1]
}

// NodeCount returns the number of nodes in the arena.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// Style returns mutable access to a node's style, or nil for an invalid id.
func (t *Tree) Style(id NodeID) *style.Style {
	if !t.Valid(id) {
		return nil
	}
	return &t.at(id).style
}

// AppendChild makes child the last child of parent. A child keeps a single
// parent; appending a node that already has one, or a node from the
// ancestor chain of parent, is rejected.
func (t *Tree) AppendChild(parent, child NodeID) error {
	if !t.Valid(parent) {
		return errors.InvalidNode(errors.PhaseTree, uint64(parent))
	}
	if !t.Valid(child) {
		return errors.InvalidNode(errors.PhaseTree, uint64(child))
	}
	if t.at(child).parent != 0 {
		return errors.New(errors.PhaseTree, errors.KindInvalidData).
			Detail("node %d already has a parent", child).
			Build()
	}
	for n := parent; n != 0; n = t.at(n).parent {
		if n == child {
			return errors.Cycle(uint64(parent), uint64(child))
		}
	}
	t.at(child).parent = parent
	t.at(parent).children = append(t.at(parent).children, child)
	return nil
}

// Children returns a node's child ids in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}
	return t.at(id).children
}

// ChildCount returns the number of children of a node, 0 for an invalid id.
func (t *Tree) ChildCount(id NodeID) int {
	if !t.Valid(id) {
		return 0
	}
	return len(t.at(id).children)
}

// Layout returns the computed layout of a node. It is only meaningful after
// ComputeLayout has run on an ancestor of the node.
func (t *Tree) Layout(id NodeID) Layout {
	if !t.Valid(id) {
		return Layout{}
	}
	return t.at(id).layout
}

// ComputeLayout lays out the subtree under root within the available space.
// Pass NaN for an axis to leave it unconstrained.
func (t *Tree) ComputeLayout(root NodeID, available layoutboundary.Size[float32]) error {
	if !t.Valid(root) {
		return errors.InvalidNode(errors.PhaseLayout, uint64(root))
	}

	s := &t.at(root).style
	size := layoutboundary.Size[float32]{
		Width:  resolveOrFallback(s.Size.Width, available.Width, available.Width),
		Height: resolveOrFallback(s.Size.Height, available.Height, available.Height),
	}
	// An unconstrained root with an auto size collapses to its content.
	if math.IsNaN(float64(size.Width)) {
		size.Width = 0
	}
	if math.IsNaN(float64(size.Height)) {
		size.Height = 0
	}
	size = clampSize(size, s, available)

	t.at(root).layout.Location = layoutboundary.Point[float32]{}
	t.layoutNode(root, size, available)

	Logger().Debug("layout computed",
		zap.Uint64("root", uint64(root)),
		zap.Float32("width", size.Width),
		zap.Float32("height", size.Height),
	)
	return nil
}

// resolveOrFallback resolves d against containing, falling back for
// indefinite values.
func resolveOrFallback(d style.Dimension, containing, fallback float32) float32 {
	if v, ok := d.Resolve(containing); ok {
		return v
	}
	return fallback
}

// clampSize applies min/max constraints resolved against the containing size.
func clampSize(size layoutboundary.Size[float32], s *style.Style, containing layoutboundary.Size[float32]) layoutboundary.Size[float32] {
	if v, ok := s.MinSize.Width.Resolve(containing.Width); ok && size.Width < v {
		size.Width = v
	}
	if v, ok := s.MaxSize.Width.Resolve(containing.Width); ok && size.Width > v {
		size.Width = v
	}
	if v, ok := s.MinSize.Height.Resolve(containing.Height); ok && size.Height < v {
		size.Height = v
	}
	if v, ok := s.MaxSize.Height.Resolve(containing.Height); ok && size.Height > v {
		size.Height = v
	}
	return size
}
