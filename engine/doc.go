// Package engine implements the layout-tree engine behind the boundary
// surface: a node arena keyed by NodeID, per-node styles, and flexbox layout
// computation.
//
// The engine is deliberately unaware of the wire representation. The boundary
// package reaches it through raw Tree and Style references and translates
// every engine value to and from the fixed-layout records a foreign caller
// sees.
//
// A Tree is safe for single-goroutine access. Grid placement properties are
// stored and round-tripped through styles, but grid layout itself is not
// computed; grid containers fall back to block stacking.
package engine
