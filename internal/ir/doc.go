// Package ir defines the canonical intermediate representation for quantum
// programs: the typed expression/statement tree and the platform model that
// declares the legal data types, physical objects, functions, and instruction
// types.
//
// This package contains the node definitions and the pure tree algorithms
// that belong with them (structural equality, cloning, traversal, the
// one-line describer, and reference remapping). Construction and lookup live
// in internal/ir/ops; the object-access analysis lives in internal/ir/access.
// ir imports nothing internal except internal/prim, keeping it the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Every node kind is a sealed-interface sum type (marker methods), so
//     type switches over node kinds can be checked for exhaustiveness.
//   - Ownership is strictly tree-shaped. InstructionType.Generalization and
//     Reference.Target are non-owning back-links; the owning direction is
//     always downward (Specializations, registry slices).
//   - Platform registries are append-only and sorted by name. Links to
//     platform entities stay valid for the lifetime of the Root.
//   - There is no global state: every operation takes the Root it works on.
package ir
