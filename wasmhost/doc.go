// Package wasmhost exposes the boundary surface to WebAssembly guests as a
// wazero host module. The ABI is all-scalar: trees are uint32 table handles
// (0 invalid), node ids cross as u64, dimensions as (f32, u32) pairs on the
// way in and a packed u64 on the way out, and every failure is an i32 status
// from the boundary's closed set.
//
// The host never reaches around the boundary package: each call derives a
// style reference through the guarded tree entry points, so guests get the
// same rejection and null-safety behavior as in-process callers.
package wasmhost
