package engine

import (
	"errors"
	"testing"

	layoutboundary "github.com/flexframe/layout-boundary"
	liberrors "github.com/flexframe/layout-boundary/errors"
	"github.com/flexframe/layout-boundary/style"
)

func TestTree_NewLeaf(t *testing.T) {
	tree := NewTree()

	a := tree.NewLeaf()
	b := tree.NewLeaf()

	if a == 0 || b == 0 {
		t.Fatal("NewLeaf returned the reserved zero id")
	}
	if a == b {
		t.Fatal("NewLeaf returned duplicate ids")
	}
	if tree.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", tree.NodeCount())
	}
	if !tree.Valid(a) || !tree.Valid(b) {
		t.Error("fresh ids should be valid")
	}
	if tree.Valid(0) || tree.Valid(99) {
		t.Error("zero and out-of-range ids should be invalid")
	}
}

func TestTree_DefaultStyle(t *testing.T) {
	tree := NewTree()
	id := tree.NewLeaf()

	s := tree.Style(id)
	if s == nil {
		t.Fatal("Style returned nil for a valid id")
	}
	if s.Display != style.DisplayFlex {
		t.Errorf("default display = %v, want flex", s.Display)
	}
	if !s.Size.Width.IsAuto() || !s.Size.Height.IsAuto() {
		t.Error("default size should be auto")
	}
	if s.FlexShrink != 1 {
		t.Errorf("default flex-shrink = %v, want 1", s.FlexShrink)
	}

	if tree.Style(0) != nil {
		t.Error("Style(0) should return nil")
	}
}

func TestTree_AppendChild(t *testing.T) {
	tree := NewTree()
	parent := tree.NewLeaf()
	child := tree.NewLeaf()

	if err := tree.AppendChild(parent, child); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}
	if got := tree.ChildCount(parent); got != 1 {
		t.Errorf("ChildCount = %d, want 1", got)
	}
	if kids := tree.Children(parent); len(kids) != 1 || kids[0] != child {
		t.Errorf("Children = %v, want [%d]", kids, child)
	}
}

func TestTree_AppendChildErrors(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf()
	b := tree.NewLeaf()
	c := tree.NewLeaf()
	if err := tree.AppendChild(a, b); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	tests := []struct {
		name   string
		parent NodeID
		child  NodeID
		kind   liberrors.Kind
	}{
		{"invalid parent", 99, c, liberrors.KindInvalidNode},
		{"invalid child", a, 99, liberrors.KindInvalidNode},
		{"self append", c, c, liberrors.KindCycle},
		{"cycle", b, a, liberrors.KindCycle},
		{"already parented", c, b, liberrors.KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.AppendChild(tt.parent, tt.child)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, &liberrors.Error{Phase: liberrors.PhaseTree, Kind: tt.kind}) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func avail(w, h float32) layoutboundary.Size[float32] {
	return layoutboundary.Size[float32]{Width: w, Height: h}
}

func TestComputeLayout_GrowSplit(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	var kids [2]NodeID
	for i := range kids {
		kids[i] = tree.NewLeaf()
		tree.Style(kids[i]).FlexGrow = 1
		if err := tree.AppendChild(root, kids[i]); err != nil {
			t.Fatal(err)
		}
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	rl := tree.Layout(root)
	if rl.Size.Width != 100 || rl.Size.Height != 100 {
		t.Fatalf("root size = %v, want 100x100", rl.Size)
	}

	l0, l1 := tree.Layout(kids[0]), tree.Layout(kids[1])
	if l0.Size.Width != 50 || l1.Size.Width != 50 {
		t.Errorf("child widths = %v, %v, want 50 each", l0.Size.Width, l1.Size.Width)
	}
	if l0.Size.Height != 100 || l1.Size.Height != 100 {
		t.Errorf("child heights = %v, %v, want stretched to 100", l0.Size.Height, l1.Size.Height)
	}
	if l0.Location.X != 0 || l1.Location.X != 50 {
		t.Errorf("child x = %v, %v, want 0 and 50", l0.Location.X, l1.Location.X)
	}
}

func TestComputeLayout_MaxWidthFreeze(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	capped := tree.NewLeaf()
	free := tree.NewLeaf()
	tree.Style(capped).FlexGrow = 1
	tree.Style(capped).MaxSize.Width = style.Length(30)
	tree.Style(free).FlexGrow = 1
	for _, c := range []NodeID{capped, free} {
		if err := tree.AppendChild(root, c); err != nil {
			t.Fatal(err)
		}
	}

	if err := tree.ComputeLayout(root, avail(100, 50)); err != nil {
		t.Fatal(err)
	}

	if got := tree.Layout(capped).Size.Width; got != 30 {
		t.Errorf("capped width = %v, want 30", got)
	}
	if got := tree.Layout(free).Size.Width; got != 70 {
		t.Errorf("uncapped width = %v, want 70", got)
	}
}

func TestComputeLayout_PaddingAndBorderOffset(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	child := tree.NewLeaf()
	rs := tree.Style(root)
	rs.Padding = layoutboundary.Rect[style.Dimension]{
		Left: style.Length(10), Right: style.Length(10),
		Top: style.Length(5), Bottom: style.Length(5),
	}
	rs.Border = layoutboundary.Rect[style.Dimension]{
		Left: style.Length(2), Right: style.Length(2),
		Top: style.Length(2), Bottom: style.Length(2),
	}
	tree.Style(child).FlexGrow = 1
	if err := tree.AppendChild(root, child); err != nil {
		t.Fatal(err)
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatal(err)
	}

	cl := tree.Layout(child)
	if cl.Location.X != 12 || cl.Location.Y != 7 {
		t.Errorf("child location = %v, want (12, 7)", cl.Location)
	}
	if cl.Size.Width != 76 { // 100 - 2*10 padding - 2*2 border
		t.Errorf("child width = %v, want 76", cl.Size.Width)
	}
	if got := tree.Layout(root).Border; got.Left != 2 || got.Bottom != 2 {
		t.Errorf("root layout border = %v, want 2 on all edges", got)
	}
}

func TestComputeLayout_PercentChild(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	child := tree.NewLeaf()
	tree.Style(child).Size.Width = style.Percent(0.5)
	tree.Style(child).Size.Height = style.Percent(0.25)
	if err := tree.AppendChild(root, child); err != nil {
		t.Fatal(err)
	}

	if err := tree.ComputeLayout(root, avail(200, 100)); err != nil {
		t.Fatal(err)
	}

	cl := tree.Layout(child)
	if cl.Size.Width != 100 || cl.Size.Height != 25 {
		t.Errorf("child size = %v, want 100x25", cl.Size)
	}
}

func TestComputeLayout_JustifyAndAlign(t *testing.T) {
	tests := []struct {
		name    string
		justify style.AlignContent
		align   style.AlignItems
		wantX   [2]float32
		wantY   float32
	}{
		{"center", style.AlignContentCenter, style.AlignItemsCenter, [2]float32{30, 50}, 40},
		{"end", style.AlignContentFlexEnd, style.AlignItemsFlexEnd, [2]float32{60, 80}, 80},
		{"space between", style.AlignContentSpaceBetween, style.AlignItemsStart, [2]float32{0, 80}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree()
			root := tree.NewLeaf()
			rs := tree.Style(root)
			rs.JustifyContent = tt.justify
			rs.AlignItems = tt.align

			var kids [2]NodeID
			for i := range kids {
				kids[i] = tree.NewLeaf()
				cs := tree.Style(kids[i])
				cs.Size.Width = style.Length(20)
				cs.Size.Height = style.Length(20)
				if err := tree.AppendChild(root, kids[i]); err != nil {
					t.Fatal(err)
				}
			}

			if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
				t.Fatal(err)
			}

			for i, want := range tt.wantX {
				if got := tree.Layout(kids[i]).Location.X; got != want {
					t.Errorf("child %d x = %v, want %v", i, got, want)
				}
			}
			if got := tree.Layout(kids[0]).Location.Y; got != tt.wantY {
				t.Errorf("child 0 y = %v, want %v", got, tt.wantY)
			}
		})
	}
}

func TestComputeLayout_ColumnWithGap(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	rs := tree.Style(root)
	rs.FlexDirection = style.FlexDirectionColumn
	rs.Gap.Height = style.Length(10)

	var kids [2]NodeID
	for i := range kids {
		kids[i] = tree.NewLeaf()
		tree.Style(kids[i]).Size.Height = style.Length(30)
		if err := tree.AppendChild(root, kids[i]); err != nil {
			t.Fatal(err)
		}
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatal(err)
	}

	if got := tree.Layout(kids[0]).Location.Y; got != 0 {
		t.Errorf("first child y = %v, want 0", got)
	}
	if got := tree.Layout(kids[1]).Location.Y; got != 40 {
		t.Errorf("second child y = %v, want 40", got)
	}
	// Column items stretch across the inline axis by default.
	if got := tree.Layout(kids[0]).Size.Width; got != 100 {
		t.Errorf("first child width = %v, want 100", got)
	}
}

func TestComputeLayout_Wrap(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	tree.Style(root).FlexWrap = style.FlexWrapWrap

	var kids [3]NodeID
	for i := range kids {
		kids[i] = tree.NewLeaf()
		cs := tree.Style(kids[i])
		cs.Size.Width = style.Length(40)
		cs.Size.Height = style.Length(30)
		if err := tree.AppendChild(root, kids[i]); err != nil {
			t.Fatal(err)
		}
	}

	if err := tree.ComputeLayout(root, avail(100, 90)); err != nil {
		t.Fatal(err)
	}

	if got := tree.Layout(kids[1]).Location; got.X != 40 || got.Y != 0 {
		t.Errorf("second child at %v, want (40, 0)", got)
	}
	if got := tree.Layout(kids[2]).Location; got.X != 0 || got.Y != 30 {
		t.Errorf("third child at %v, want (0, 30) on the second line", got)
	}
}

func TestComputeLayout_DisplayNone(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	hidden := tree.NewLeaf()
	shown := tree.NewLeaf()
	tree.Style(hidden).Display = style.DisplayNone
	tree.Style(hidden).Size.Width = style.Length(50)
	tree.Style(shown).FlexGrow = 1
	for _, c := range []NodeID{hidden, shown} {
		if err := tree.AppendChild(root, c); err != nil {
			t.Fatal(err)
		}
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatal(err)
	}

	if got := tree.Layout(hidden).Size; got.Width != 0 || got.Height != 0 {
		t.Errorf("hidden child size = %v, want zero", got)
	}
	if got := tree.Layout(shown).Size.Width; got != 100 {
		t.Errorf("shown child width = %v, want full 100", got)
	}
}

func TestComputeLayout_AbsoluteInsets(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	abs := tree.NewLeaf()
	as := tree.Style(abs)
	as.Position = style.PositionAbsolute
	as.Inset.Left = style.Length(10)
	as.Inset.Top = style.Length(20)
	as.Inset.Right = style.Length(10)
	as.Size.Height = style.Length(30)
	if err := tree.AppendChild(root, abs); err != nil {
		t.Fatal(err)
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatal(err)
	}

	al := tree.Layout(abs)
	if al.Location.X != 10 || al.Location.Y != 20 {
		t.Errorf("absolute child at %v, want (10, 20)", al.Location)
	}
	// Width derives from the left and right insets.
	if al.Size.Width != 80 {
		t.Errorf("absolute child width = %v, want 80", al.Size.Width)
	}
}

func TestComputeLayout_AspectRatio(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	child := tree.NewLeaf()
	cs := tree.Style(child)
	cs.Size.Width = style.Length(50)
	cs.AspectRatio = 2
	if err := tree.AppendChild(root, child); err != nil {
		t.Fatal(err)
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatal(err)
	}

	cl := tree.Layout(child)
	if cl.Size.Width != 50 || cl.Size.Height != 25 {
		t.Errorf("child size = %v, want 50x25 from the 2:1 ratio", cl.Size)
	}
}

func TestComputeLayout_BlockStacking(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf()
	tree.Style(root).Display = style.DisplayBlock

	var kids [2]NodeID
	for i := range kids {
		kids[i] = tree.NewLeaf()
		tree.Style(kids[i]).Size.Height = style.Length(25)
		if err := tree.AppendChild(root, kids[i]); err != nil {
			t.Fatal(err)
		}
	}

	if err := tree.ComputeLayout(root, avail(100, 100)); err != nil {
		t.Fatal(err)
	}

	if got := tree.Layout(kids[0]).Location.Y; got != 0 {
		t.Errorf("first child y = %v, want 0", got)
	}
	if got := tree.Layout(kids[1]).Location.Y; got != 25 {
		t.Errorf("second child y = %v, want 25", got)
	}
	if got := tree.Layout(kids[0]).Size.Width; got != 100 {
		t.Errorf("block child width = %v, want containing 100", got)
	}
}

func TestComputeLayout_InvalidRoot(t *testing.T) {
	tree := NewTree()
	err := tree.ComputeLayout(7, avail(100, 100))
	if err == nil {
		t.Fatal("expected error for invalid root")
	}
	if !errors.Is(err, &liberrors.Error{Phase: liberrors.PhaseLayout, Kind: liberrors.KindInvalidNode}) {
		t.Errorf("error = %v, want invalid_node in layout phase", err)
	}
}
