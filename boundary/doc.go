// Package boundary is the stable, fixed-layout call surface over the layout
// engine. Every entry point exchanges only raw references, integers, and
// fixed-layout value records, so a caller that cannot see the engine's native
// types (a managed runtime, a WASM guest via the wasmhost package, or another
// native module) can still read and write node styles and drive layout.
//
// The package has four layers:
//
//   - Wire value types: flat records with no behavior (Dimension,
//     GridPlacement, Layout, the result envelopes).
//   - Variant codec: total encoding from native style values to wire records,
//     and context-constrained decoding back, parameterized by the accepting
//     set of the property being written.
//   - Status protocol: the closed set of outcome codes every mutating entry
//     point returns, and the result envelopes carrying a status plus a
//     payload for value-returning calls.
//   - Boundary guard: the null-handle check performed before any dereference,
//     composed with the codec into the per-property accessor surface.
//
// Failure never mutates: a setter that returns anything other than StatusOK
// has left the target property untouched, and batch edge setters apply all
// targeted edges or none. The package holds no state; everything lives in
// the engine arena behind the caller's handles, and every call is a single
// O(1) property read or write.
package boundary
