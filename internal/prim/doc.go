// Package prim provides the primitive vocabulary shared by every IR layer.
//
// This package contains leaf definitions only: the operand access modes, the
// identifier grammar, and the cQASM operator table. All other internal
// packages may import prim; prim imports nothing internal. This keeps the
// primitives a dependency-free foundation under internal/ir.
package prim
