// Package bindgen renders the host surface for foreign consumers. A single
// signature table, described with wit type definitions, drives two emitters:
// a C# one producing DllImport declarations with the matching struct and
// enum declarations, and a WIT one producing the interface text guests
// compile against.
//
// The table mirrors the wasmhost exports, so a binding generated here and a
// guest linked against the host module agree on every name and scalar shape.
package bindgen
