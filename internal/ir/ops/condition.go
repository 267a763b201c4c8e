package ops

import (
	"github.com/quantir/quantir/internal/ir"
)

// ConditionKind enumerates the classical condition shapes a gate can be
// predicated on, combining up to two measurement bits.
type ConditionKind int

const (
	// CondAlways executes unconditionally.
	CondAlways ConditionKind = iota

	// CondNever never executes.
	CondNever

	// CondUnary executes when the bit is set.
	CondUnary

	// CondNot executes when the bit is clear.
	CondNot

	// CondAnd executes when both bits are set.
	CondAnd

	// CondNand executes unless both bits are set.
	CondNand

	// CondOr executes when either bit is set.
	CondOr

	// CondNor executes when neither bit is set.
	CondNor

	// CondXor executes when exactly one bit is set.
	CondXor

	// CondNxor executes when the bits are equal.
	CondNxor
)

// arity returns the number of bit operands the kind takes, or -1 for an
// unknown kind.
func (k ConditionKind) arity() int {
	switch k {
	case CondAlways, CondNever:
		return 0
	case CondUnary, CondNot:
		return 1
	case CondAnd, CondNand, CondOr, CondNor, CondXor, CondNxor:
		return 2
	default:
		return -1
	}
}

// MakeCondition builds the bit-typed condition expression for a condition
// kind applied to measurement-bit references. The combinators resolve to the
// platform's logical operator function types (operator!, operator&&,
// operator||, operator^^), which must be registered for the bit type.
func MakeCondition(root *ir.Root, kind ConditionKind, bits ...*ir.Reference) (ir.Expression, error) {
	want := kind.arity()
	if want < 0 {
		return nil, ir.Errorf(ir.ErrInternalConsistency,
			"unknown condition kind %d", kind)
	}
	if len(bits) != want {
		return nil, ir.Errorf(ir.ErrOperandArity,
			"condition kind takes %d bit operand(s), got %d", want, len(bits))
	}

	operands := make([]ir.Expression, len(bits))
	for i, b := range bits {
		operands[i] = b
	}

	switch kind {
	case CondAlways:
		lit, err := MakeBitLit(root, true, nil)
		return lit, err
	case CondNever:
		lit, err := MakeBitLit(root, false, nil)
		return lit, err
	case CondUnary:
		return operands[0], nil
	case CondNot:
		return MakeFunctionCall(root, "operator!", operands)
	case CondAnd:
		return MakeFunctionCall(root, "operator&&", operands)
	case CondNand:
		return negate(root, "operator&&", operands)
	case CondOr:
		return MakeFunctionCall(root, "operator||", operands)
	case CondNor:
		return negate(root, "operator||", operands)
	case CondXor:
		return MakeFunctionCall(root, "operator^^", operands)
	case CondNxor:
		return negate(root, "operator^^", operands)
	default:
		return nil, ir.Errorf(ir.ErrInternalConsistency,
			"unknown condition kind %d", kind)
	}
}

func negate(root *ir.Root, op string, operands []ir.Expression) (ir.Expression, error) {
	inner, err := MakeFunctionCall(root, op, operands)
	if err != nil {
		return nil, err
	}
	return MakeFunctionCall(root, "operator!", []ir.Expression{inner})
}
