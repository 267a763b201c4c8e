// Package ops implements the structured operations on the IR: registry
// construction and lookup, instruction-type specialization, the statement
// builders, and the literal/reference constructors.
//
// Every operation takes the *ir.Root it works on explicitly; there is no
// ambient platform. All builders validate their inputs and return *ir.Error
// values tagged with the error codes from the ir package. Operations that
// insert into the platform registries keep them sorted by name, so lookups
// stay O(log n) and iteration order stays deterministic.
package ops
