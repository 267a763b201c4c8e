package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/ir/ops"
	"github.com/quantir/quantir/internal/prim"
	"github.com/quantir/quantir/internal/testutil"
)

func intLit(t *testing.T, root *ir.Root, v int64) ir.Expression {
	t.Helper()
	lit, err := ops.MakeIntLit(root, v, nil)
	require.NoError(t, err)
	return lit
}

func TestMakeCustomInstruction(t *testing.T) {
	root := testutil.NewTestRoot(t)

	q0 := qubitRef(t, root, 0)
	insn, err := ops.MakeInstruction(root, "x", []ir.Expression{q0}, nil, false, false)
	require.NoError(t, err)

	custom, ok := insn.(*ir.CustomInstruction)
	require.True(t, ok)
	assert.Equal(t, "x", custom.InstructionType.Name)
	assert.Equal(t, []ir.Expression{q0}, custom.Operands)

	// The generated condition is the literal true.
	cond, ok := custom.Condition.(*ir.BitLiteral)
	require.True(t, ok)
	assert.True(t, cond.Value)
}

func TestMakeInstructionUnknown(t *testing.T) {
	root := testutil.NewTestRoot(t)

	_, err := ops.MakeInstruction(root, "x", nil, nil, false, false)
	assert.Equal(t, ir.ErrUnknownName, ir.CodeOf(err))

	_, err = ops.MakeInstruction(root, "ry", []ir.Expression{qubitRef(t, root, 0)}, nil, false, false)
	assert.Equal(t, ir.ErrUnknownName, ir.CodeOf(err))

	// With returnEmptyOnFailure the lookup failure is not an error.
	insn, err := ops.MakeInstruction(root, "ry", []ir.Expression{qubitRef(t, root, 0)}, nil, false, true)
	assert.NoError(t, err)
	assert.Nil(t, insn)
}

func TestMakeInstructionSpecializationDispatch(t *testing.T) {
	root := testutil.NewTestRoot(t)

	// Register g with one qubit operand plus the specialization g q[1].
	_, err := ops.AddInstructionType(root, gateType(root, "g", prim.AccessWrite))
	require.NoError(t, err)
	spec, err := ops.AddInstructionType(root, gateType(root, "g", prim.AccessWrite),
		qubitRef(t, root, 1))
	require.NoError(t, err)

	// Matching operand: the specialized node is used, the operand burned.
	insn, err := ops.MakeInstruction(root, "g", []ir.Expression{qubitRef(t, root, 1)}, nil, false, false)
	require.NoError(t, err)
	custom := insn.(*ir.CustomInstruction)
	assert.Same(t, spec, custom.InstructionType)
	assert.Empty(t, custom.Operands)

	// Non-matching operand: the general node with the operand in place.
	insn, err = ops.MakeInstruction(root, "g", []ir.Expression{qubitRef(t, root, 2)}, nil, false, false)
	require.NoError(t, err)
	custom = insn.(*ir.CustomInstruction)
	assert.Same(t, spec.Generalization, custom.InstructionType)
	require.Len(t, custom.Operands, 1)
}

func TestMakeSetInstruction(t *testing.T) {
	root := testutil.NewTestRoot(t)

	count := ops.FindPhysicalObject(root, "count")
	countRef, err := ops.MakeReference(root, count)
	require.NoError(t, err)

	insn, err := ops.MakeSetInstruction(root, countRef, intLit(t, root, 5), nil)
	require.NoError(t, err)
	set, ok := insn.(*ir.SetInstruction)
	require.True(t, ok)
	assert.Same(t, countRef, set.LHS)

	// Mismatched types on the two sides.
	bitLit, err := ops.MakeBitLit(root, true, nil)
	require.NoError(t, err)
	_, err = ops.MakeSetInstruction(root, countRef, bitLit, nil)
	assert.Equal(t, ir.ErrTypeMismatch, ir.CodeOf(err))

	// Quantum LHS is not assignable.
	_, err = ops.MakeSetInstruction(root, qubitRef(t, root, 0), intLit(t, root, 1), nil)
	assert.Equal(t, ir.ErrOperandKind, ir.CodeOf(err))

	// LHS must be a reference.
	_, err = ops.MakeInstruction(root, "set",
		[]ir.Expression{intLit(t, root, 1), intLit(t, root, 2)}, nil, false, false)
	assert.Equal(t, ir.ErrOperandKind, ir.CodeOf(err))

	// Exactly two operands.
	_, err = ops.MakeInstruction(root, "set",
		[]ir.Expression{countRef}, nil, false, false)
	assert.Equal(t, ir.ErrOperandArity, ir.CodeOf(err))
}

func TestMakeWaitInstruction(t *testing.T) {
	root := testutil.NewTestRoot(t)

	// Duration only: a full barrier of 10 cycles.
	insn, err := ops.MakeInstruction(root, "wait",
		[]ir.Expression{intLit(t, root, 10)}, nil, false, false)
	require.NoError(t, err)
	wait := insn.(*ir.WaitInstruction)
	assert.EqualValues(t, 10, wait.Duration)
	assert.Empty(t, wait.Objects)

	// Duration plus an object to wait on.
	q0 := qubitRef(t, root, 0)
	insn, err = ops.MakeInstruction(root, "wait",
		[]ir.Expression{intLit(t, root, 10), q0}, nil, false, false)
	require.NoError(t, err)
	wait = insn.(*ir.WaitInstruction)
	assert.Equal(t, []*ir.Reference{q0}, wait.Objects)

	// Negative duration.
	_, err = ops.MakeInstruction(root, "wait",
		[]ir.Expression{&ir.IntLiteral{Value: -1, Type: ops.FindType(root, "int")}},
		nil, false, false)
	assert.Equal(t, ir.ErrOutOfRangeLiteral, ir.CodeOf(err))

	// Missing duration.
	_, err = ops.MakeInstruction(root, "wait", nil, nil, false, false)
	assert.Equal(t, ir.ErrOperandArity, ir.CodeOf(err))

	// Non-literal duration.
	_, err = ops.MakeInstruction(root, "wait", []ir.Expression{q0}, nil, false, false)
	assert.Equal(t, ir.ErrOperandKind, ir.CodeOf(err))

	// Waits are unconditional: a condition is rejected.
	bitLit, err := ops.MakeBitLit(root, true, nil)
	require.NoError(t, err)
	_, err = ops.MakeInstruction(root, "wait",
		[]ir.Expression{intLit(t, root, 1)}, bitLit, false, false)
	assert.Equal(t, ir.ErrOperandKind, ir.CodeOf(err))
}

func TestMakeBarrierInstruction(t *testing.T) {
	root := testutil.NewTestRoot(t)

	q0 := qubitRef(t, root, 0)
	q1 := qubitRef(t, root, 1)
	insn, err := ops.MakeInstruction(root, "barrier", []ir.Expression{q0, q1}, nil, false, false)
	require.NoError(t, err)
	wait := insn.(*ir.WaitInstruction)
	assert.Zero(t, wait.Duration)
	assert.Equal(t, []*ir.Reference{q0, q1}, wait.Objects)

	// A barrier with no operands waits on everything.
	insn, err = ops.MakeInstruction(root, "barrier", nil, nil, false, false)
	require.NoError(t, err)
	assert.Empty(t, insn.(*ir.WaitInstruction).Objects)

	_, err = ops.MakeInstruction(root, "barrier",
		[]ir.Expression{intLit(t, root, 3)}, nil, false, false)
	assert.Equal(t, ir.ErrOperandKind, ir.CodeOf(err))
}

func TestMakeInstructionGeneratesOverload(t *testing.T) {
	root := testutil.NewTestRoot(t)

	// x(qubit, qubit) is not registered, but overload generation clones
	// the known x with write-mode operands.
	insn, err := ops.MakeInstruction(root, "x",
		[]ir.Expression{qubitRef(t, root, 0), qubitRef(t, root, 1)}, nil, true, false)
	require.NoError(t, err)
	custom := insn.(*ir.CustomInstruction)
	assert.Equal(t, "x", custom.InstructionType.Name)
	assert.Len(t, custom.InstructionType.OperandTypes, 2)
}

func TestMakeFunctionCall(t *testing.T) {
	root := testutil.NewTestRoot(t)

	callExpr, err := ops.MakeFunctionCall(root, "operator+",
		[]ir.Expression{intLit(t, root, 1), intLit(t, root, 2)})
	require.NoError(t, err)
	assert.Equal(t, "operator+", callExpr.Function.Name)
	assert.Equal(t, "int", ops.TypeOf(callExpr).TypeName())

	_, err = ops.MakeFunctionCall(root, "operator+",
		[]ir.Expression{intLit(t, root, 1)})
	assert.Equal(t, ir.ErrUnknownName, ir.CodeOf(err))
}

func TestMakeCondition(t *testing.T) {
	root := testutil.NewTestRoot(t)

	b0, err := ops.MakeBitRef(root, 0)
	require.NoError(t, err)
	b1, err := ops.MakeBitRef(root, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		kind ops.ConditionKind
		bits []*ir.Reference
		want string
	}{
		{"always", ops.CondAlways, nil, "true"},
		{"never", ops.CondNever, nil, "false"},
		{"unary", ops.CondUnary, []*ir.Reference{b0}, "(bit)qubits[0]"},
		{"not", ops.CondNot, []*ir.Reference{b0}, "!(bit)qubits[0]"},
		{"and", ops.CondAnd, []*ir.Reference{b0, b1}, "(bit)qubits[0] && (bit)qubits[1]"},
		{"nand", ops.CondNand, []*ir.Reference{b0, b1}, "!((bit)qubits[0] && (bit)qubits[1])"},
		{"or", ops.CondOr, []*ir.Reference{b0, b1}, "(bit)qubits[0] || (bit)qubits[1]"},
		{"nor", ops.CondNor, []*ir.Reference{b0, b1}, "!((bit)qubits[0] || (bit)qubits[1])"},
		{"xor", ops.CondXor, []*ir.Reference{b0, b1}, "(bit)qubits[0] ^^ (bit)qubits[1]"},
		{"nxor", ops.CondNxor, []*ir.Reference{b0, b1}, "!((bit)qubits[0] ^^ (bit)qubits[1])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ops.MakeCondition(root, tt.kind, tt.bits...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ir.Describe(expr))
		})
	}

	_, err = ops.MakeCondition(root, ops.CondAnd, b0)
	assert.Equal(t, ir.ErrOperandArity, ir.CodeOf(err))
}
