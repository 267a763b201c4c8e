// Package testutil provides shared test fixtures: a small but complete
// platform with the types, registers, gates, and operators the package tests
// exercise.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/ir/ops"
	"github.com/quantir/quantir/internal/prim"
)

// NumTestQubits is the extent of the fixture's main qubit register.
const NumTestQubits = 3

// NewTestRoot builds an IR root with:
//
//   - data types qubit, bit, int (32-bit signed), real
//   - main qubit register "qubits" of shape [3], implicit bit type bit
//   - an integer register "creg" of shape [8] and a scalar "count"
//   - gates: x (write qubit, 40 cycles), cz (Z-commute qubit pair,
//     80 cycles), measure (measure qubit, 120 cycles)
//   - logical and arithmetic operators on bit and int
//
// Everything goes through the ops builders, so the fixture doubles as a
// smoke test of the construction path.
func NewTestRoot(t *testing.T) *ir.Root {
	t.Helper()

	root := ir.NewRoot()
	root.Platform.Name = "test"

	qubitType, err := ops.AddType(root, &ir.QubitType{Name: "qubit"})
	require.NoError(t, err)
	bitType, err := ops.AddType(root, &ir.BitType{Name: "bit"})
	require.NoError(t, err)
	intType, err := ops.AddType(root, &ir.IntType{Name: "int", Bits: 32, Signed: true})
	require.NoError(t, err)
	_, err = ops.AddType(root, &ir.RealType{Name: "real"})
	require.NoError(t, err)

	root.Platform.DefaultBitType = bitType
	root.Platform.DefaultIntType = intType
	root.Platform.ImplicitBitType = bitType

	qubits, err := ops.AddPhysicalObject(root, ir.NewObject("qubits", qubitType, NumTestQubits))
	require.NoError(t, err)
	root.Platform.Qubits = qubits

	_, err = ops.AddPhysicalObject(root, ir.NewObject("creg", intType, 8))
	require.NoError(t, err)
	_, err = ops.AddPhysicalObject(root, ir.NewObject("count", intType))
	require.NoError(t, err)

	addGate(t, root, "x", 40, &ir.OperandType{Mode: prim.AccessWrite, DataType: qubitType})
	addGate(t, root, "cz", 80,
		&ir.OperandType{Mode: prim.AccessCommuteZ, DataType: qubitType},
		&ir.OperandType{Mode: prim.AccessCommuteZ, DataType: qubitType})
	addGate(t, root, "measure", 120, &ir.OperandType{Mode: prim.AccessMeasure, DataType: qubitType})

	addFunc(t, root, "operator!", bitType, bitType)
	addFunc(t, root, "operator&&", bitType, bitType, bitType)
	addFunc(t, root, "operator||", bitType, bitType, bitType)
	addFunc(t, root, "operator^^", bitType, bitType, bitType)
	addFunc(t, root, "operator+", intType, intType, intType)
	addFunc(t, root, "operator-", intType, intType, intType)
	addFunc(t, root, "operator*", intType, intType, intType)
	addFunc(t, root, "operator**", intType, intType, intType)
	addFunc(t, root, "operator-", intType, intType)
	addFunc(t, root, "operator<", bitType, intType, intType)
	addFunc(t, root, "operator?:", intType, bitType, intType, intType)

	return root
}

func addGate(t *testing.T, root *ir.Root, name string, duration uint64, operands ...*ir.OperandType) {
	t.Helper()
	_, err := ops.AddInstructionType(root, &ir.InstructionType{
		Name:         name,
		CQASMName:    name,
		OperandTypes: operands,
		Duration:     duration,
	})
	require.NoError(t, err)
}

func addFunc(t *testing.T, root *ir.Root, name string, ret ir.DataType, operands ...ir.DataType) {
	t.Helper()
	fn := &ir.FunctionType{Name: name, ReturnType: ret}
	for _, typ := range operands {
		fn.OperandTypes = append(fn.OperandTypes, &ir.OperandType{
			Mode:     prim.AccessRead,
			DataType: typ,
		})
	}
	_, err := ops.AddFunctionType(root, fn)
	require.NoError(t, err)
}
