package wasmhost

import (
	"testing"

	"github.com/flexframe/layout-boundary/engine"
)

func TestTreeTable(t *testing.T) {
	table := NewTreeTable()

	h1 := table.Insert(engine.NewTree())
	h2 := table.Insert(engine.NewTree())
	if h1 == 0 || h2 == 0 || h1 == h2 {
		t.Fatalf("handles = %d, %d", h1, h2)
	}
	if table.Len() != 2 {
		t.Fatalf("len = %d", table.Len())
	}

	if _, ok := table.Get(h1); !ok {
		t.Fatal("live handle not found")
	}
	if _, ok := table.Get(0); ok {
		t.Fatal("zero handle resolved")
	}
	if _, ok := table.Get(Handle(99)); ok {
		t.Fatal("unknown handle resolved")
	}

	if _, ok := table.Remove(h1); !ok {
		t.Fatal("remove failed")
	}
	if _, ok := table.Get(h1); ok {
		t.Fatal("removed handle still resolves")
	}
	if _, ok := table.Remove(h1); ok {
		t.Fatal("double remove succeeded")
	}

	// Freed slots are recycled.
	h3 := table.Insert(engine.NewTree())
	if h3 != h1 {
		t.Fatalf("recycled handle = %d, want %d", h3, h1)
	}

	if h := table.Insert(nil); h != 0 {
		t.Fatalf("nil tree inserted as %d", h)
	}

	table.Close()
	if h := table.Insert(engine.NewTree()); h != 0 {
		t.Fatalf("insert after close = %d", h)
	}
	if _, ok := table.Get(h2); ok {
		t.Fatal("handle survived close")
	}
}
