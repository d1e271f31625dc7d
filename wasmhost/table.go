package wasmhost

import (
	"sync"

	"github.com/flexframe/layout-boundary/engine"
)

// Handle is a guest-visible reference to a tree in a TreeTable.
// Handle 0 is reserved and always invalid.
type Handle uint32

// TreeTable maps guest handles to engine trees. Freed slots are recycled
// through a free list so long-lived guests do not grow the table without
// bound.
type TreeTable struct {
	entries  []treeEntry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type treeEntry struct {
	tree  *engine.Tree
	valid bool
}

// NewTreeTable creates an empty table.
func NewTreeTable() *TreeTable {
	return &TreeTable{
		entries:  make([]treeEntry, 0, 8),
		freeList: make([]Handle, 0, 4),
	}
}

// Insert stores a tree and returns its handle, or 0 after Close.
func (t *TreeTable) Insert(tree *engine.Tree) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || tree == nil {
		return 0
	}

	e := treeEntry{tree: tree, valid: true}
	if n := len(t.freeList); n > 0 {
		h := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = e
		return h
	}
	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// Get retrieves a tree by handle.
func (t *TreeTable) Get(h Handle) (*engine.Tree, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].tree, true
}

// Remove drops a handle and returns the tree it referenced. This is the
// guest's release path; the tree itself is garbage collected once nothing
// else holds it.
func (t *TreeTable) Remove(h Handle) (*engine.Tree, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	tree := t.entries[idx].tree
	t.entries[idx] = treeEntry{}
	t.freeList = append(t.freeList, h)
	return tree, true
}

// Len reports the number of live handles.
func (t *TreeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Close invalidates every handle; subsequent Inserts return 0.
func (t *TreeTable) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.entries = nil
	t.freeList = nil
}
