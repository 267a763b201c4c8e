package ir

import "bytes"

// ExprEquals reports structural equality of two expressions: same variant,
// same literal value and type, same reference target, viewed type and
// indices, same function type and pairwise-equal operands. Template operand
// matching in the specialization tree uses this, never pointer identity.
func ExprEquals(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *BitLiteral:
		y, ok := b.(*BitLiteral)
		return ok && x.Value == y.Value && x.Type == y.Type

	case *IntLiteral:
		y, ok := b.(*IntLiteral)
		return ok && x.Value == y.Value && x.Type == y.Type

	case *RealLiteral:
		y, ok := b.(*RealLiteral)
		return ok && x.Value == y.Value && x.Type == y.Type

	case *ComplexLiteral:
		y, ok := b.(*ComplexLiteral)
		return ok && x.Value == y.Value && x.Type == y.Type

	case *RealMatrixLiteral:
		y, ok := b.(*RealMatrixLiteral)
		return ok && x.Type == y.Type && realMatrixEquals(x.Value, y.Value)

	case *ComplexMatrixLiteral:
		y, ok := b.(*ComplexMatrixLiteral)
		return ok && x.Type == y.Type && complexMatrixEquals(x.Value, y.Value)

	case *StringLiteral:
		y, ok := b.(*StringLiteral)
		return ok && x.Value == y.Value && x.Type == y.Type

	case *JsonLiteral:
		y, ok := b.(*JsonLiteral)
		return ok && x.Type == y.Type && bytes.Equal(x.Value, y.Value)

	case *Reference:
		y, ok := b.(*Reference)
		if !ok || x.Target != y.Target || x.Type != y.Type {
			return false
		}
		if len(x.Indices) != len(y.Indices) {
			return false
		}
		for i := range x.Indices {
			if x.Indices[i].Value != y.Indices[i].Value {
				return false
			}
		}
		return true

	case *FunctionCall:
		y, ok := b.(*FunctionCall)
		if !ok || x.Function != y.Function {
			return false
		}
		if len(x.Operands) != len(y.Operands) {
			return false
		}
		for i := range x.Operands {
			if !ExprEquals(x.Operands[i], y.Operands[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func realMatrixEquals(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func complexMatrixEquals(a, b [][]complex128) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// CompareReferences totally orders references lexicographically over
// (target, viewed data type, indices), so they can key the sorted access
// list of the dependency analysis. Targets order by allocation ordinal with
// the empty target first; types order by name; index lists order
// element-wise with the shorter list first on a tie.
func CompareReferences(a, b *Reference) int {
	if c := compareTargets(a.Target, b.Target); c != 0 {
		return c
	}
	if c := compareTypes(a.Type, b.Type); c != 0 {
		return c
	}
	for i := 0; ; i++ {
		if i >= len(b.Indices) {
			if i >= len(a.Indices) {
				return 0
			}
			return 1
		}
		if i >= len(a.Indices) {
			return -1
		}
		av, bv := a.Indices[i].Value, b.Indices[i].Value
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
}

func compareTargets(a, b *Object) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.ord < b.ord:
		return -1
	case a.ord > b.ord:
		return 1
	default:
		return 0
	}
}

func compareTypes(a, b DataType) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.TypeName() < b.TypeName():
		return -1
	case a.TypeName() > b.TypeName():
		return 1
	default:
		return 0
	}
}
