// Package layoutboundary provides a stable, fixed-layout boundary surface for
// an opaque layout-tree engine.
//
// A foreign caller (a managed runtime, a WASM guest, or any native module
// that does not share the engine's in-memory representation) can read and
// write the styling properties of engine-owned nodes and invoke layout
// computation on them, exchanging only raw handles, integers, and fixed-layout
// value records.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	layoutboundary/      Root package with shared geometry primitives
//	├── style/           Native style model: dimension variants, grid
//	│                    placements, enum properties, the Style record
//	├── engine/          Node arena and flexbox layout computation
//	├── boundary/        Wire records, variant codec, status protocol,
//	│                    boundary guard, and the accessor surface
//	├── wasmhost/        wazero host module exposing the boundary surface
//	│                    to WebAssembly guests via integer handles
//	├── bindgen/         Foreign-language stub generation from the exported
//	│                    signature table
//	└── errors/          Structured error types for engine and tooling code
//
// # Quick Start
//
// Build a tree through the boundary surface and compute layout:
//
//	tree := engine.NewTree()
//	ref := boundary.TreeRefOf(tree)
//
//	root := boundary.TreeNewNode(ref)
//	child := boundary.TreeNewNode(ref)
//	boundary.TreeAppendChild(ref, root.Value, child.Value)
//
//	sr := boundary.TreeGetStyleMut(ref, child.Value)
//	boundary.StyleSetWidth(sr.Value, 100, boundary.UnitLength)
//	boundary.StyleSetFlexGrow(sr.Value, 1)
//
//	boundary.TreeComputeLayout(ref, root.Value, 800, 600)
//	layout := boundary.TreeGetLayout(ref, root.Value)
//
// # Safety Model
//
// Every boundary entry point validates its handles for nullness before any
// dereference and converts codec failures into status codes. No native fault
// ever crosses the boundary as anything other than a documented status. The
// boundary layer holds no state of its own; all state lives in the engine
// arena reached through the caller-supplied handles.
//
// # Thread Safety
//
// Tree and the styles it owns are safe for single-goroutine access. Callers
// that share a tree across goroutines must synchronize externally; the
// boundary layer adds no locking of its own.
package layoutboundary
