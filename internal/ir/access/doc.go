// Package access computes, for any statement or block, the set of object
// references it touches and the effective access mode per reference. The
// result is the input of the data-dependency scheduler: reads commute with
// reads, axis-commutation modes commute with the same axis, and everything
// else serializes as a write.
//
// Barrier-like statements (full-barrier waits, goto, dummy instructions,
// break/continue) are modeled with a synthetic write access on the empty
// reference; every other statement contributes a synthetic read on it. That
// lets independent statements shift around between barriers while nothing
// crosses one.
package access
