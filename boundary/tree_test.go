package boundary

import (
	"math"
	"testing"

	"github.com/flexframe/layout-boundary/engine"
)

func TestNullTreeRef(t *testing.T) {
	var tree TreeRef

	if r := TreeNewNode(tree); r.Status != StatusNullTreePointer || r.Value != 0 {
		t.Fatalf("TreeNewNode = %+v", r)
	}
	if st := TreeAppendChild(tree, 1, 2); st != StatusNullTreePointer {
		t.Fatalf("TreeAppendChild = %v", st)
	}
	if r := TreeChildCount(tree, 1); r.Status != StatusNullTreePointer || r.Value != 0 {
		t.Fatalf("TreeChildCount = %+v", r)
	}
	if r := TreeGetStyle(tree, 1); r.Status != StatusNullTreePointer || r.Value != nil {
		t.Fatalf("TreeGetStyle = %+v", r)
	}
	if r := TreeGetStyleMut(tree, 1); r.Status != StatusNullTreePointer || r.Value != (StyleMutRef{}) {
		t.Fatalf("TreeGetStyleMut = %+v", r)
	}
	if st := TreeComputeLayout(tree, 1, 100, 100); st != StatusNullTreePointer {
		t.Fatalf("TreeComputeLayout = %v", st)
	}
	if r := TreeGetLayout(tree, 1); r.Status != StatusNullTreePointer || r.Value != (Layout{}) {
		t.Fatalf("TreeGetLayout = %+v", r)
	}
}

func TestInvalidNodeID(t *testing.T) {
	tree := TreeRefOf(engine.NewTree())
	bogus := NodeID(42)

	if st := TreeAppendChild(tree, bogus, bogus); st != StatusInvalidNodeID {
		t.Fatalf("append = %v", st)
	}
	if r := TreeChildCount(tree, bogus); r.Status != StatusInvalidNodeID {
		t.Fatalf("child count = %+v", r)
	}
	if r := TreeGetStyle(tree, bogus); r.Status != StatusInvalidNodeID || r.Value != nil {
		t.Fatalf("get style = %+v", r)
	}
	if r := TreeGetStyleMut(tree, bogus); r.Status != StatusInvalidNodeID || r.Value != (StyleMutRef{}) {
		t.Fatalf("get style mut = %+v", r)
	}
	if st := TreeComputeLayout(tree, bogus, 100, 100); st != StatusInvalidNodeID {
		t.Fatalf("compute = %v", st)
	}
	if r := TreeGetLayout(tree, bogus); r.Status != StatusInvalidNodeID {
		t.Fatalf("layout = %+v", r)
	}
	// The zero id is reserved and never valid.
	if r := TreeChildCount(tree, 0); r.Status != StatusInvalidNodeID {
		t.Fatalf("zero id = %+v", r)
	}
}

func TestTreeBuildAndLayout(t *testing.T) {
	tree := TreeRefOf(engine.NewTree())

	root := TreeNewNode(tree)
	if root.Status != StatusOK || root.Value == 0 {
		t.Fatalf("root = %+v", root)
	}
	child := TreeNewNode(tree)
	if child.Status != StatusOK {
		t.Fatalf("child = %+v", child)
	}
	if st := TreeAppendChild(tree, root.Value, child.Value); st != StatusOK {
		t.Fatalf("append = %v", st)
	}
	if r := TreeChildCount(tree, root.Value); r.Status != StatusOK || r.Value != 1 {
		t.Fatalf("child count = %+v", r)
	}
	if r := TreeChildCount(tree, child.Value); r.Status != StatusOK || r.Value != 0 {
		t.Fatalf("leaf child count = %+v", r)
	}
	// Appending the same child twice is refused.
	if st := TreeAppendChild(tree, root.Value, child.Value); st != StatusInvalidNodeID {
		t.Fatalf("double append = %v", st)
	}

	rootStyle := TreeGetStyleMut(tree, root.Value)
	if rootStyle.Status != StatusOK {
		t.Fatalf("root style = %+v", rootStyle)
	}
	childStyle := TreeGetStyleMut(tree, child.Value)
	if childStyle.Status != StatusOK {
		t.Fatalf("child style = %+v", childStyle)
	}

	if st := StyleSetWidth(rootStyle.Value, 200, UnitLength); st != StatusOK {
		t.Fatal(st)
	}
	if st := StyleSetHeight(rootStyle.Value, 100, UnitLength); st != StatusOK {
		t.Fatal(st)
	}
	if st := StyleSetWidth(childStyle.Value, 0.5, UnitPercent); st != StatusOK {
		t.Fatal(st)
	}
	if st := StyleSetHeight(childStyle.Value, 0.5, UnitPercent); st != StatusOK {
		t.Fatal(st)
	}

	nan := float32(math.NaN())
	if st := TreeComputeLayout(tree, root.Value, nan, nan); st != StatusOK {
		t.Fatalf("compute = %v", st)
	}

	rl := TreeGetLayout(tree, root.Value)
	if rl.Status != StatusOK {
		t.Fatalf("root layout = %+v", rl)
	}
	if rl.Value.Width != 200 || rl.Value.Height != 100 {
		t.Fatalf("root size = %vx%v", rl.Value.Width, rl.Value.Height)
	}
	cl := TreeGetLayout(tree, child.Value)
	if cl.Status != StatusOK {
		t.Fatalf("child layout = %+v", cl)
	}
	if cl.Value.Width != 100 || cl.Value.Height != 50 {
		t.Fatalf("child size = %vx%v", cl.Value.Width, cl.Value.Height)
	}
	if cl.Value.X != 0 || cl.Value.Y != 0 {
		t.Fatalf("child position = (%v,%v)", cl.Value.X, cl.Value.Y)
	}
}

func TestLayoutBorderRecord(t *testing.T) {
	tree := TreeRefOf(engine.NewTree())
	root := TreeNewNode(tree).Value

	s := TreeGetStyleMut(tree, root).Value
	if st := StyleSetWidth(s, 100, UnitLength); st != StatusOK {
		t.Fatal(st)
	}
	if st := StyleSetHeight(s, 100, UnitLength); st != StatusOK {
		t.Fatal(st)
	}
	if st := StyleSetBorder(s, EdgeAll, Dimension{Value: 5, Unit: UnitLength}); st != StatusOK {
		t.Fatal(st)
	}

	if st := TreeComputeLayout(tree, root, 100, 100); st != StatusOK {
		t.Fatal(st)
	}
	l := TreeGetLayout(tree, root)
	if l.Status != StatusOK {
		t.Fatalf("layout = %+v", l)
	}
	b := l.Value
	if b.BorderLeft != 5 || b.BorderRight != 5 || b.BorderTop != 5 || b.BorderBottom != 5 {
		t.Fatalf("border = %v/%v/%v/%v", b.BorderLeft, b.BorderRight, b.BorderTop, b.BorderBottom)
	}
}

func TestStyleRefsAlias(t *testing.T) {
	tree := TreeRefOf(engine.NewTree())
	node := TreeNewNode(tree).Value

	mut := TreeGetStyleMut(tree, node).Value
	ro := TreeGetStyle(tree, node).Value

	if st := StyleSetFlexGrow(mut, 3); st != StatusOK {
		t.Fatal(st)
	}
	// Both references observe the same underlying style.
	if got := StyleGetFlexGrow(ro); got != 3 {
		t.Fatalf("const ref reads %v", got)
	}
	if got := StyleGetFlexGrow(mut.Const()); got != 3 {
		t.Fatalf("downgraded ref reads %v", got)
	}
}
