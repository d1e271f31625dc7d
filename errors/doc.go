// Package errors provides structured error types for the layout-boundary
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: a property path, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTree, errors.KindCycle).
//		Path("node", "children").
//		Detail("appending node %d to its own subtree", id).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidNode(errors.PhaseLayout, id)
//	err := errors.InvalidInput(errors.PhaseHost, "empty module name")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// The boundary package itself never returns Go errors: every boundary entry
// point reports through its closed status-code set. This package serves the
// engine, the wasm host layer, and the stub generator.
package errors
