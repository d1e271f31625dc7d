package boundary

import (
	layoutboundary "github.com/flexframe/layout-boundary"
)

// Tree entry points. Each one guards the tree reference, then the node id,
// before any engine call; engine-level failures surface as
// StatusInvalidNodeID since the arena is the only thing that can refuse an
// id it handed out.

// TreeNewNode creates a childless node with the default style.
func TreeNewNode(tree TreeRef) NodeResult {
	if tree == nil {
		return NodeResult{Status: StatusNullTreePointer}
	}
	return NodeResult{Status: StatusOK, Value: treeOf(tree).NewLeaf()}
}

// TreeAppendChild attaches child under parent. Self-appends, cycles, and
// nodes that already have a parent are refused with the node-id status.
func TreeAppendChild(tree TreeRef, parent, child NodeID) Status {
	if tree == nil {
		return StatusNullTreePointer
	}
	if err := treeOf(tree).AppendChild(parent, child); err != nil {
		return StatusInvalidNodeID
	}
	return StatusOK
}

// TreeChildCount reports the number of direct children of node.
func TreeChildCount(tree TreeRef, node NodeID) IntResult {
	if tree == nil {
		return IntResult{Status: StatusNullTreePointer}
	}
	t := treeOf(tree)
	if !t.Valid(node) {
		return IntResult{Status: StatusInvalidNodeID}
	}
	return IntResult{Status: StatusOK, Value: int32(t.ChildCount(node))}
}

// TreeGetStyle returns a read-only reference to node's style. The reference
// stays valid until the node's tree is mutated structurally.
func TreeGetStyle(tree TreeRef, node NodeID) StyleConstRefResult {
	if tree == nil {
		return StyleConstRefResult{Status: StatusNullTreePointer}
	}
	s := treeOf(tree).Style(node)
	if s == nil {
		return StyleConstRefResult{Status: StatusInvalidNodeID}
	}
	return StyleConstRefResult{Status: StatusOK, Value: StyleConstRefOf(s)}
}

// TreeGetStyleMut returns a mutable reference to node's style.
func TreeGetStyleMut(tree TreeRef, node NodeID) StyleMutRefResult {
	if tree == nil {
		return StyleMutRefResult{Status: StatusNullTreePointer}
	}
	s := treeOf(tree).Style(node)
	if s == nil {
		return StyleMutRefResult{Status: StatusInvalidNodeID}
	}
	return StyleMutRefResult{Status: StatusOK, Value: StyleMutRefOf(s)}
}

// TreeComputeLayout lays out the subtree rooted at node within the given
// available space. NaN in either axis means unconstrained.
func TreeComputeLayout(tree TreeRef, node NodeID, availableWidth, availableHeight float32) Status {
	if tree == nil {
		return StatusNullTreePointer
	}
	avail := layoutboundary.Size[float32]{Width: availableWidth, Height: availableHeight}
	if err := treeOf(tree).ComputeLayout(node, avail); err != nil {
		return StatusInvalidNodeID
	}
	return StatusOK
}

// TreeGetLayout returns node's computed layout as a flat record.
func TreeGetLayout(tree TreeRef, node NodeID) LayoutResult {
	if tree == nil {
		return LayoutResult{Status: StatusNullTreePointer}
	}
	t := treeOf(tree)
	if !t.Valid(node) {
		return LayoutResult{Status: StatusInvalidNodeID}
	}
	l := t.Layout(node)
	return LayoutResult{Status: StatusOK, Value: Layout{
		X:             l.Location.X,
		Y:             l.Location.Y,
		Width:         l.Size.Width,
		Height:        l.Size.Height,
		ContentWidth:  l.ContentSize.Width,
		ContentHeight: l.ContentSize.Height,
		BorderLeft:    l.Border.Left,
		BorderRight:   l.Border.Right,
		BorderTop:     l.Border.Top,
		BorderBottom:  l.Border.Bottom,
	}}
}
