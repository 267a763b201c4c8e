package ops

import (
	"github.com/quantir/quantir/internal/ir"
)

// MakeInstruction builds a new instruction statement from a name and operand
// list. The name dispatches the kind:
//
//   - "set": exactly two operands; the first must be a reference of a
//     classical data type, and both sides must have the same data type.
//   - "wait": the first operand is a non-negative integer literal giving the
//     duration in cycles; the remaining operands are references to wait on.
//     With no further operands the wait is a full barrier.
//   - "barrier": a zero-duration wait; all operands are references.
//   - anything else: a custom instruction, resolved through
//     FindInstructionType and specialized as far as the registered
//     specialization tree allows, consuming matched front operands.
//
// A nil condition makes conditional instructions unconditional (literal
// true). Waits are always unconditional; a condition on one is an error.
// When generateOverload is set, unknown operand type combinations for a
// known custom instruction name generate a write-mode overload instead of
// failing. When returnEmptyOnFailure is set, an unknown custom instruction
// returns nil instead of an error.
func MakeInstruction(
	root *ir.Root,
	name string,
	operands []ir.Expression,
	condition ir.Expression,
	generateOverload bool,
	returnEmptyOnFailure bool,
) (ir.Instruction, error) {
	var insn ir.Instruction
	switch name {
	case "set":
		setInsn, err := buildSet(operands)
		if err != nil {
			return nil, err
		}
		insn = setInsn

	case "wait":
		if len(operands) == 0 {
			return nil, ir.Errorf(ir.ErrOperandArity,
				"wait instructions must have at least one operand (the duration)")
		}
		lit, ok := operands[0].(*ir.IntLiteral)
		if !ok {
			return nil, ir.Errorf(ir.ErrOperandKind,
				"the duration of a wait instruction must be an integer literal")
		}
		if lit.Value < 0 {
			return nil, ir.Errorf(ir.ErrOutOfRangeLiteral,
				"the duration of a wait instruction cannot be negative")
		}
		waitInsn := &ir.WaitInstruction{Duration: uint64(lit.Value)}
		for _, op := range operands[1:] {
			ref, ok := op.(*ir.Reference)
			if !ok {
				return nil, ir.Errorf(ir.ErrOperandKind,
					"the operands of a wait instruction after the first must be references")
			}
			waitInsn.Objects = append(waitInsn.Objects, ref)
		}
		insn = waitInsn

	case "barrier":
		waitInsn := &ir.WaitInstruction{}
		for _, op := range operands {
			ref, ok := op.(*ir.Reference)
			if !ok {
				return nil, ir.Errorf(ir.ErrOperandKind,
					"the operands of a barrier instruction must be references")
			}
			waitInsn.Objects = append(waitInsn.Objects, ref)
		}
		insn = waitInsn

	default:
		custom, err := buildCustom(root, name, operands, generateOverload, returnEmptyOnFailure)
		if err != nil || custom == nil {
			return nil, err
		}
		insn = custom
	}

	// Attach the condition where the instruction kind supports one.
	if cond, ok := insn.(ir.ConditionalInstruction); ok {
		if condition == nil {
			lit, err := MakeBitLit(root, true, nil)
			if err != nil {
				return nil, err
			}
			cond.SetConditionExpr(lit)
		} else {
			cond.SetConditionExpr(condition)
		}
	} else if condition != nil {
		return nil, ir.Errorf(ir.ErrOperandKind,
			"condition specified for instruction that cannot be made conditional")
	}

	return insn, nil
}

func buildSet(operands []ir.Expression) (*ir.SetInstruction, error) {
	if len(operands) != 2 {
		return nil, ir.Errorf(ir.ErrOperandArity,
			"set instructions must have exactly two operands")
	}
	lhs, ok := operands[0].(*ir.Reference)
	if !ok {
		return nil, ir.Errorf(ir.ErrOperandKind,
			"the left-hand side of a set instruction must be a reference")
	}
	typ := TypeOf(operands[0])
	if !ir.IsClassicalType(typ) {
		return nil, ir.Errorf(ir.ErrOperandKind,
			"set instructions only support classical data types")
	}
	if typ != TypeOf(operands[1]) {
		return nil, ir.Errorf(ir.ErrTypeMismatch,
			"the left-hand side and right-hand side of a set instruction must have the same type")
	}
	return &ir.SetInstruction{LHS: lhs, RHS: operands[1]}, nil
}

func buildCustom(
	root *ir.Root,
	name string,
	operands []ir.Expression,
	generateOverload bool,
	returnEmptyOnFailure bool,
) (*ir.CustomInstruction, error) {
	custom := &ir.CustomInstruction{Operands: operands}

	types := make([]ir.DataType, len(operands))
	for i, op := range operands {
		types[i] = TypeOf(op)
	}
	custom.InstructionType = FindInstructionType(root, name, types, generateOverload)
	if custom.InstructionType == nil {
		if returnEmptyOnFailure {
			return nil, nil
		}
		return nil, ir.Errorf(ir.ErrUnknownName,
			"unknown instruction: %s %s", name, typeListString(types))
	}

	// Specialize as far as the tree allows; every descent burns the front
	// operand into the type.
	for {
		found := false
		for _, spec := range custom.InstructionType.Specializations {
			if len(custom.Operands) == 0 {
				break
			}
			last := spec.TemplateOperands[len(spec.TemplateOperands)-1]
			if ir.ExprEquals(last, custom.Operands[0]) {
				custom.Operands = custom.Operands[1:]
				custom.InstructionType = spec
				found = true
				break
			}
		}
		if !found {
			break
		}
	}

	return custom, nil
}

// MakeSetInstruction is shorthand for MakeInstruction("set", ...).
func MakeSetInstruction(root *ir.Root, lhs *ir.Reference, rhs, condition ir.Expression) (ir.Instruction, error) {
	return MakeInstruction(root, "set", []ir.Expression{lhs, rhs}, condition, false, false)
}

// MakeFunctionCall builds a function call from a name and operand list,
// resolved by overload through FindFunctionType. Operands are never
// specialized.
func MakeFunctionCall(root *ir.Root, name string, operands []ir.Expression) (*ir.FunctionCall, error) {
	types := make([]ir.DataType, len(operands))
	for i, op := range operands {
		types[i] = TypeOf(op)
	}
	fn := FindFunctionType(root, name, types)
	if fn == nil {
		return nil, ir.Errorf(ir.ErrUnknownName,
			"unknown function: %s(%s)", name, typeListString(types))
	}
	return &ir.FunctionCall{Function: fn, Operands: operands}, nil
}
