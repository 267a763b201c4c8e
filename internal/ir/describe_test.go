package ir_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/ir/ops"
	"github.com/quantir/quantir/internal/testutil"
)

func intLit(t *testing.T, root *ir.Root, v int64) ir.Expression {
	t.Helper()
	lit, err := ops.MakeIntLit(root, v, nil)
	require.NoError(t, err)
	return lit
}

func call(t *testing.T, root *ir.Root, name string, operands ...ir.Expression) ir.Expression {
	t.Helper()
	c, err := ops.MakeFunctionCall(root, name, operands)
	require.NoError(t, err)
	return c
}

func TestDescribeOperatorPrecedence(t *testing.T) {
	root := testutil.NewTestRoot(t)

	a := intLit(t, root, 1)
	b := intLit(t, root, 2)
	c := intLit(t, root, 3)

	tests := []struct {
		name string
		expr ir.Expression
		want string
	}{
		{
			"mul binds tighter than add",
			call(t, root, "operator+", a, call(t, root, "operator*", b, c)),
			"1 + 2 * 3",
		},
		{
			"forced parens on add under mul",
			call(t, root, "operator*", call(t, root, "operator+", a, b), c),
			"(1 + 2) * 3",
		},
		{
			"right-associative pow needs no parens",
			call(t, root, "operator**", a, call(t, root, "operator**", b, c)),
			"1 ** 2 ** 3",
		},
		{
			"left-grouped pow keeps parens",
			call(t, root, "operator**", call(t, root, "operator**", a, b), c),
			"(1 ** 2) ** 3",
		},
		{
			"unary minus parenthesizes a sum",
			call(t, root, "operator-", call(t, root, "operator+", a, b)),
			"-(1 + 2)",
		},
		{
			"comparison renders infix",
			call(t, root, "operator<", a, b),
			"1 < 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ir.Describe(tt.expr))
		})
	}
}

func TestDescribeTernary(t *testing.T) {
	root := testutil.NewTestRoot(t)

	cond, err := ops.MakeBitLit(root, true, nil)
	require.NoError(t, err)
	expr := call(t, root, "operator?:", cond, intLit(t, root, 1), intLit(t, root, 2))
	assert.Equal(t, "true ? 1 : 2", ir.Describe(expr))
}

func TestDescribeNonOperatorCall(t *testing.T) {
	root := testutil.NewTestRoot(t)

	bitType := ops.FindType(root, "bit")
	_, err := ops.AddFunctionType(root, &ir.FunctionType{
		Name:       "parity",
		ReturnType: bitType,
	})
	require.NoError(t, err)

	expr := call(t, root, "parity")
	assert.Equal(t, "parity()", ir.Describe(expr))
}

func TestDescribeInstruction(t *testing.T) {
	root := testutil.NewTestRoot(t)

	q0, err := ops.MakeQubitRef(root, 0)
	require.NoError(t, err)
	insn, err := ops.MakeInstruction(root, "x", []ir.Expression{q0}, nil, false, false)
	require.NoError(t, err)

	assert.Equal(t, "x qubit=qubits[0]", ir.Describe(insn))
}

func TestDescribeConditionElision(t *testing.T) {
	root := testutil.NewTestRoot(t)

	count := ops.FindPhysicalObject(root, "count")
	require.NotNil(t, count)
	countRef, err := ops.MakeReference(root, count)
	require.NoError(t, err)

	// Unconditional: the generated literal-true condition is elided.
	insn, err := ops.MakeSetInstruction(root, countRef, intLit(t, root, 5), nil)
	require.NoError(t, err)
	assert.Equal(t, "count = 5", ir.Describe(insn))

	// Conditional: the condition is spelled out.
	condBit, err := ops.MakeBitRef(root, 1)
	require.NoError(t, err)
	insn, err = ops.MakeSetInstruction(root, countRef, intLit(t, root, 5), condBit)
	require.NoError(t, err)
	assert.Equal(t, "cond ((bit)qubits[1]) count = 5", ir.Describe(insn))
}

func TestDescribeWait(t *testing.T) {
	root := testutil.NewTestRoot(t)

	q0, err := ops.MakeQubitRef(root, 0)
	require.NoError(t, err)
	q1, err := ops.MakeQubitRef(root, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		insn *ir.WaitInstruction
		want string
	}{
		{"full barrier", &ir.WaitInstruction{}, "wait"},
		{"single cycle", &ir.WaitInstruction{Duration: 1}, "wait 1 cycle"},
		{"many cycles", &ir.WaitInstruction{Duration: 10}, "wait 10 cycles"},
		{
			"duration with objects",
			&ir.WaitInstruction{Duration: 10, Objects: []*ir.Reference{q0}},
			"wait 10 cycles after qubits[0]",
		},
		{
			"zero duration with objects",
			&ir.WaitInstruction{Objects: []*ir.Reference{q0, q1}},
			"wait on qubits[0], qubits[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ir.Describe(tt.insn))
		})
	}
}

func TestDescribeGolden(t *testing.T) {
	root := testutil.NewTestRoot(t)

	q0, err := ops.MakeQubitRef(root, 0)
	require.NoError(t, err)
	q1, err := ops.MakeQubitRef(root, 1)
	require.NoError(t, err)
	q2, err := ops.MakeQubitRef(root, 2)
	require.NoError(t, err)
	bitView, err := ops.MakeBitRef(root, 2)
	require.NoError(t, err)

	x, err := ops.MakeInstruction(root, "x", []ir.Expression{q0}, nil, false, false)
	require.NoError(t, err)
	cz, err := ops.MakeInstruction(root, "cz", []ir.Expression{q0, q1}, nil, false, false)
	require.NoError(t, err)
	meas, err := ops.MakeInstruction(root, "measure", []ir.Expression{q0}, nil, false, false)
	require.NoError(t, err)

	xType := ops.FindType(root, "qubit")
	specialized, err := ops.AddInstructionType(root, &ir.InstructionType{
		Name:      "rot",
		CQASMName: "rot",
		OperandTypes: []*ir.OperandType{
			{DataType: xType},
		},
		Duration: 40,
	}, q1)
	require.NoError(t, err)

	entries := []struct {
		label string
		node  ir.Node
	}{
		{"int literal", intLit(t, root, 42)},
		{"string literal", &ir.StringLiteral{Value: `a"b`, Type: ops.FindType(root, "bit")}},
		{"qubit reference", q2},
		{"bit view reference", bitView},
		{"precedence", call(t, root, "operator+", intLit(t, root, 1),
			call(t, root, "operator*", intLit(t, root, 2), intLit(t, root, 3)))},
		{"x gate", x},
		{"cz gate", cz},
		{"measure gate", meas},
		{"specialized type", specialized},
		{"qubit register", root.Platform.Qubits},
		{"platform", root.Platform},
		{"source", &ir.SourceInstruction{}},
		{"sink", &ir.SinkInstruction{}},
		{"break", &ir.BreakStatement{}},
		{"continue", &ir.ContinueStatement{}},
	}

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-18s %s\n", e.label+":", ir.Describe(e.node))
	}
	testutil.Golden(t, "describe", []byte(sb.String()))
}
